package domain

import "strings"

type Addon struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

var addonCatalog = []Addon{
	{Code: "wifi", Name: "WI-FI ACCESS", Cost: 3000},
	{Code: "lounge", Name: "LOUNGE ACCESS", Cost: 5000},
	{Code: "on-demand", Name: "ON-DEMAND ACCESS", Cost: 5000},
	{Code: "luggage", Name: "EXTRA LUGGAGE SPACE", Cost: 5000},
}

func Addons() []Addon {
	return append([]Addon(nil), addonCatalog...)
}

func LookupAddon(code string) (Addon, error) {
	for _, a := range addonCatalog {
		if strings.EqualFold(a.Code, code) {
			return a, nil
		}
	}
	return Addon{}, ErrUnknownAddon
}

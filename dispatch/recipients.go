// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import "github.com/danielhkuo/points-tracker/models"

// CarrierGateways maps carrier names to their email-to-SMS gateway domains.
// Must match the list the frontend offers.
var CarrierGateways = map[string]string{
	"Verizon":      "vtext.com",
	"AT&T":         "txt.att.net",
	"T-Mobile":     "tmomail.net",
	"Sprint":       "messaging.sprintpcs.com",
	"Boost Mobile": "sms.alltel.net",
	"MetroPCS":     "mymetropcs.com",
	"Cricket":      "mms.aiowireless.net",
	"US Cellular":  "email.uscc.net",
}

// BuildRecipients converts phone/carrier pairs into gateway addresses.
// A carrier not in the table is used verbatim as the domain, which lets a
// target carry a direct gateway domain. Phones are stripped to digits and
// must come out at exactly 10; anything else is dropped without error.
func BuildRecipients(targets []models.NotificationTarget) []string {
	var recipients []string
	for _, target := range targets {
		if target.Phone == "" || target.Carrier == "" {
			continue
		}

		domain, ok := CarrierGateways[target.Carrier]
		if !ok {
			domain = target.Carrier
		}

		phone := digitsOnly(target.Phone)
		if len(phone) != 10 {
			continue
		}

		recipients = append(recipients, phone+"@"+domain)
	}
	return recipients
}

func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

package transport

import "strings"

// Preset is a well-known SMTP submission endpoint.
type Preset struct {
	Host string
	Port int
}

// presets maps a provider hint (first label of the sender's domain)
// to its submission server.
var presets = map[string]Preset{
	"gmail":      {"smtp.gmail.com", 465},
	"googlemail": {"smtp.gmail.com", 465},
	"outlook":    {"smtp-mail.outlook.com", 587},
	"hotmail":    {"smtp-mail.outlook.com", 587},
	"live":       {"smtp-mail.outlook.com", 587},
	"msn":        {"smtp-mail.outlook.com", 587},
	"office365":  {"smtp.office365.com", 587},
	"yahoo":      {"smtp.mail.yahoo.com", 465},
	"ymail":      {"smtp.mail.yahoo.com", 465},
	"icloud":     {"smtp.mail.me.com", 587},
	"me":         {"smtp.mail.me.com", 587},
	"mac":        {"smtp.mail.me.com", 587},
	"aol":        {"smtp.aol.com", 587},
	"zoho":       {"smtp.zoho.com", 465},
	"yandex":     {"smtp.yandex.ru", 465},
	"gmx":        {"mail.gmx.com", 587},
	"fastmail":   {"smtp.fastmail.com", 465},
	"mailgun":    {"smtp.mailgun.org", 465},
	"sendgrid":   {"smtp.sendgrid.net", 587},
	"postmark":   {"smtp.postmarkapp.com", 2525},
	"sendinblue": {"smtp-relay.brevo.com", 587},
	"brevo":      {"smtp-relay.brevo.com", 587},
	"qq":         {"smtp.qq.com", 465},
	"163":        {"smtp.163.com", 465},
	"126":        {"smtp.126.com", 465},
}

// LookupPreset returns the submission server for a provider hint.
func LookupPreset(hint string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(hint))]
	return p, ok
}

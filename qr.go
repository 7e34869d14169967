package main

import (
	"fmt"
	"io"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// escapeWifiString handles the special character escaping for SSID and password.
func escapeWifiString(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`;`, `\;`,
		`,`, `\,`,
		`:`, `\:`,
		`"`, `\"`,
	)
	return r.Replace(s)
}

// wifiQRPayload builds the WIFI: join string QR readers understand. An
// empty secret marks the network as open.
func wifiQRPayload(ssid, secret string) string {
	var b strings.Builder
	b.WriteString("WIFI:S:")
	b.WriteString(escapeWifiString(ssid))
	b.WriteString(";")
	if secret == "" {
		b.WriteString("T:nopass;")
	} else {
		b.WriteString("T:WPA;P:")
		b.WriteString(escapeWifiString(secret))
		b.WriteString(";")
	}
	b.WriteString(";;")
	return b.String()
}

// printWifiQR renders a terminal-friendly QR code for joining the network.
func printWifiQR(w io.Writer, ssid, secret string) error {
	q, err := qrcode.New(wifiQRPayload(ssid, secret), qrcode.Medium)
	if err != nil {
		return err
	}
	fmt.Fprint(w, q.ToSmallString(false))
	return nil
}

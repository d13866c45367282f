package mail

import (
	"fmt"
	"strings"

	"github.com/netops-lab/wlcguest/pkg/job"
	"github.com/netops-lab/wlcguest/pkg/wlc"
)

const disclaimer = "DISCLAIMER : Guests understand and acknowledge that we exercise no control " +
	"over the nature, content or reliability of the information and/or data passing through our network."

// GuestBody renders the plain-text credential message for one account.
func GuestBody(d *job.Descriptor, account wlc.GuestAccount) string {
	return fmt.Sprintf(`Wireless Guest User Credentials
-------------------------------
Guest account User Name : %s
Guest account Password : %s
Profile name : %s
User Active from : %s User Active until : %s

%s

Regards,

Network Team`,
		account.Username, account.Password, d.SSID,
		d.WindowStartLocal(), d.WindowEndLocal(), disclaimer)
}

// HTMLBody wraps a plain-text body into the HTML alternative part. The
// text is rendered in a pre-wrap block so the plain layout survives
// HTML-only mail clients.
func HTMLBody(text string) string {
	var b strings.Builder
	b.WriteString("<html>\n  <head></head>\n  <body>\n")
	b.WriteString(`    <div style="font-family: Calibri,Candara,Segoe,Segoe UI,Optima,Arial,sans-serif; white-space: pre-wrap; font-size: 15px;">`)
	b.WriteString("\n")
	b.WriteString(htmlEscape(text))
	b.WriteString("\n    </div>\n  </body>\n</html>\n")
	return b.String()
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

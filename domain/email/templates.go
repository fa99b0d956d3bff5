package email

import (
	"html/template"
	"strings"
)

// Template generators are pure: they interpolate the supplied values into
// a shared HTML shell and return the markup. Sending is the mailer's job.

const shellHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Helvetica,Arial,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:32px 16px;">
      <table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;">
        <tr><td style="padding:32px 40px 16px;">
          <h1 style="margin:0;font-size:22px;color:#1a1a2e;">{{.Heading}}</h1>
        </td></tr>
        <tr><td style="padding:0 40px 24px;color:#444455;font-size:15px;line-height:1.6;">
          {{.Body}}
        </td></tr>
        <tr><td style="padding:16px 40px 32px;border-top:1px solid #ececf1;color:#9999aa;font-size:12px;">
          You are receiving this email because you joined our waitlist.
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`

var (
	shellTmpl = template.Must(template.New("shell").Parse(shellHTML))

	welcomeBodyTmpl = template.Must(template.New("welcome").Parse(`
<p>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
<p>Thanks for joining the waitlist. You are on the list and we will let you know the moment your spot opens up.</p>
{{if .ReferralCode}}
<p>Want to move up the list? Share your referral code with friends:</p>
<p style="text-align:center;"><span style="display:inline-block;padding:12px 24px;background:#f0f0ff;border-radius:6px;font-size:20px;letter-spacing:4px;font-weight:bold;">{{.ReferralCode}}</span></p>
{{end}}
<p>Talk soon!</p>`))

	updateBodyTmpl = template.Must(template.New("update").Parse(`
<p>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
<p>{{.Message}}</p>
{{if .Highlights}}
<ul>
{{range .Highlights}}<li>{{.}}</li>
{{end}}</ul>
{{end}}
<p>Thanks for sticking with us.</p>`))

	referralSuccessBodyTmpl = template.Must(template.New("referral_success").Parse(`
<p>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
<p>Good news: someone just joined the waitlist with your referral code{{if .ReferredName}} ({{.ReferredName}}){{end}}. Your position just improved.</p>
<p>Keep sharing your code to climb further:</p>
<p style="text-align:center;"><span style="display:inline-block;padding:12px 24px;background:#f0f0ff;border-radius:6px;font-size:20px;letter-spacing:4px;font-weight:bold;">{{.ReferralCode}}</span></p>`))
)

type WelcomeEmailData struct {
	Name         string
	ReferralCode string
}

type UpdateEmailData struct {
	Name       string
	Title      string
	Message    string
	Highlights []string
}

type ReferralSuccessEmailData struct {
	Name         string
	ReferralCode string
	ReferredName string
}

func renderShell(heading string, bodyTmpl *template.Template, data any) string {
	var body strings.Builder
	// Templates are package constants; execution over plain structs cannot fail.
	_ = bodyTmpl.Execute(&body, data)

	var out strings.Builder
	_ = shellTmpl.Execute(&out, struct {
		Heading string
		Body    template.HTML
	}{Heading: heading, Body: template.HTML(body.String())})

	return out.String()
}

// WelcomeEmail returns the subject and HTML body for the signup
// confirmation email.
func WelcomeEmail(data WelcomeEmailData) (subject, html string) {
	return "You're on the waitlist 🎉", renderShell("Welcome aboard", welcomeBodyTmpl, data)
}

// UpdateEmail returns the subject and HTML body for a broadcast update.
// Highlights, when present, render as a bullet list.
func UpdateEmail(data UpdateEmailData) (subject, html string) {
	title := data.Title
	if title == "" {
		title = "An update from the team"
	}
	return title, renderShell(title, updateBodyTmpl, data)
}

// ReferralSuccessEmail returns the subject and HTML body sent to a
// referrer when their code is used.
func ReferralSuccessEmail(data ReferralSuccessEmailData) (subject, html string) {
	return "Your referral just paid off", renderShell("Referral success", referralSuccessBodyTmpl, data)
}

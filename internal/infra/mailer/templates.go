package mailer

import (
	"bytes"
	"html/template"
)

const (
	ResetSubject      = "Reset your password"
	InvitationSubject = "You have been invited to Founder Flow"
)

var resetTmpl = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Reset your password</title>
  </head>
  <body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Helvetica Neue', sans-serif; background-color: #ffffff;">
    <table width="100%" border="0" cellspacing="0" cellpadding="0">
      <tr>
        <td align="center" style="padding: 40px 20px;">
          <table width="600" border="0" cellspacing="0" cellpadding="0" style="max-width: 600px;">
            {{- if .LogoURL}}
            <tr>
              <td align="center" style="padding-bottom: 40px;">
                <img src="{{.LogoURL}}" alt="Founder Flow" width="120" style="display: block;" />
              </td>
            </tr>
            {{- end}}
            <tr>
              <td style="padding-bottom: 24px;">
                <h1 style="margin: 0; font-size: 24px; font-weight: bold; color: #333;">Reset your password</h1>
              </td>
            </tr>
            <tr>
              <td style="padding-bottom: 24px;">
                <p style="margin: 0; font-size: 14px; line-height: 24px; color: #333;">
                  You recently requested to reset your password. Click the button below to choose a new one:
                </p>
              </td>
            </tr>
            <tr>
              <td style="padding-bottom: 24px;">
                <a href="{{.Link}}" style="display: inline-block; padding: 12px 32px; background-color: #000000; color: #ffffff; text-decoration: none; border-radius: 6px; font-size: 14px; font-weight: 500;">
                  Reset Password
                </a>
              </td>
            </tr>
            <tr>
              <td style="padding-top: 24px; border-top: 1px solid #eee;">
                <p style="margin: 0; font-size: 14px; line-height: 24px; color: #ababab;">
                  If you didn't request this, you can safely ignore this email.
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`))

var invitationTmpl = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"><title>{{.Subject}}</title></head>
  <body style="margin: 0; padding: 40px 20px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; color: #333;">
    <h1 style="font-size: 24px;">Welcome to Founder Flow, {{.Name}}</h1>
    <p style="font-size: 14px; line-height: 24px;">An account has been created for you with the role <strong>{{.Role}}</strong>.</p>
    <p style="font-size: 14px; line-height: 24px;">Sign in with this email address and the password your admin shared with you:</p>
    <p><a href="{{.Link}}" style="display: inline-block; padding: 12px 32px; background-color: #000000; color: #ffffff; text-decoration: none; border-radius: 6px;">Sign in</a></p>
  </body>
</html>
`))

// ResetPasswordHTML renders the password reset email. link is attribute-escaped.
func ResetPasswordHTML(link, logoURL string) (string, error) {
	var buf bytes.Buffer
	err := resetTmpl.Execute(&buf, struct{ Link, LogoURL string }{link, logoURL})
	return buf.String(), err
}

func InvitationHTML(name, role, link string) (string, error) {
	var buf bytes.Buffer
	err := invitationTmpl.Execute(&buf, struct{ Subject, Name, Role, Link string }{InvitationSubject, name, role, link})
	return buf.String(), err
}

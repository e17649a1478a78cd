package email

import (
	"strings"
	"unitactivity/internal/core/domain/mail"
)

type page struct {
	title    string
	subtitle string
	heading  string
	intro    string
	gradient string
	boxStyle string
	accent   string
	validFor string
	notes    string
}

var verificationPage = page{
	title:    "Verifikasi Email - Unit Activity",
	subtitle: "Verifikasi Email Anda",
	heading:  "Selamat Datang! 👋",
	intro: "Terima kasih telah mendaftar di Unit Activity UKDC. Untuk menyelesaikan proses registrasi, " +
		"silakan gunakan kode verifikasi berikut:",
	gradient: "linear-gradient(135deg,#667eea 0%,#764ba2 100%)",
	boxStyle: "background:linear-gradient(135deg,#f6f8fb 0%,#e9ecf3 100%);border:2px solid #e2e8f0;",
	accent:   "#667eea",
	validFor: "⏱️ Berlaku selama 5 menit",
	notes: `<div style="background:linear-gradient(135deg,#fef5e7 0%,#fdebd0 100%);border-left:4px solid #f39c12;padding:20px;border-radius:8px;margin-bottom:24px;">
  <p style="color:#7d6608;margin:0;font-size:14px;line-height:1.6;">
    💡 <strong>Tips Keamanan:</strong> Jangan bagikan kode ini kepada siapapun, termasuk pihak yang mengaku dari Unit Activity UKDC.
  </p>
</div>
<p style="color:#718096;line-height:1.6;margin:0;font-size:14px;text-align:center;">
  Jika Anda tidak melakukan registrasi, abaikan email ini.
</p>`,
}

var passwordResetPage = page{
	title:    "Reset Password - Unit Activity",
	subtitle: "Reset Password",
	heading:  "Reset Password 🔑",
	intro: "Kami menerima permintaan untuk mereset password akun Anda. " +
		"Gunakan kode verifikasi berikut untuk melanjutkan proses reset password:",
	gradient: "linear-gradient(135deg,#f093fb 0%,#f5576c 100%)",
	boxStyle: "background:linear-gradient(135deg,#fff5f7 0%,#ffe8ed 100%);border:3px solid #f5576c;",
	accent:   "#f5576c",
	validFor: "⏱️ Berlaku selama 1 jam",
	notes: `<div style="background:linear-gradient(135deg,#fff3cd 0%,#ffe8a1 100%);border-left:5px solid #ffc107;padding:24px;border-radius:8px;margin-bottom:24px;">
  <p style="color:#856404;margin:0;font-size:14px;line-height:1.7;font-weight:500;">
    <strong style="display:block;margin-bottom:8px;font-size:15px;">⚠️ Perhatian Penting!</strong>
    Jika Anda tidak meminta reset password, segera abaikan email ini dan pastikan akun Anda aman.
    Pertimbangkan untuk mengubah password Anda jika mencurigai aktivitas yang tidak biasa.
  </p>
</div>
<div style="background:linear-gradient(135deg,#e8f5e9 0%,#c8e6c9 100%);border-left:5px solid #4caf50;padding:24px;border-radius:8px;margin-bottom:24px;">
  <p style="color:#2e7d32;margin:0;font-size:14px;line-height:1.7;font-weight:500;">
    <strong style="display:block;margin-bottom:8px;font-size:15px;">🛡️ Saran Keamanan!</strong>
    Gunakan password yang kuat dengan kombinasi huruf besar, kecil, angka, dan simbol.
  </p>
</div>`,
}

// The code is written as is. Callers pass short generated tokens, never free text.
func (p page) render(code string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>`)
	b.WriteString(p.title)
	b.WriteString(`</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,'Helvetica Neue',Arial,sans-serif;">
<table width="100%" cellpadding="0" cellspacing="0" style="padding:40px 20px;">
<tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:16px;overflow:hidden;box-shadow:0 20px 60px rgba(0,0,0,0.3);">
  <tr><td style="padding:50px 40px 40px 40px;text-align:center;background:`)
	b.WriteString(p.gradient)
	b.WriteString(`;">
    <h1 style="color:#ffffff;margin:0;font-size:32px;font-weight:700;">Unit Activity UKDC</h1>
    <p style="color:rgba(255,255,255,0.9);margin:12px 0 0 0;font-size:16px;font-weight:500;">`)
	b.WriteString(p.subtitle)
	b.WriteString(`</p>
  </td></tr>
  <tr><td style="padding:50px 40px;">
    <h2 style="color:#1a202c;margin:0 0 16px 0;font-size:26px;font-weight:700;">`)
	b.WriteString(p.heading)
	b.WriteString(`</h2>
    <p style="color:#4a5568;line-height:1.8;margin:0 0 32px 0;font-size:16px;">`)
	b.WriteString(p.intro)
	b.WriteString(`</p>
    <table width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 32px 0;">
    <tr><td align="center">
      <div style="border-radius:12px;padding:40px 20px;`)
	b.WriteString(p.boxStyle)
	b.WriteString(`">
        <div class="code" style="font-size:42px;font-weight:800;color:`)
	b.WriteString(p.accent)
	b.WriteString(`;letter-spacing:12px;font-family:'Courier New',monospace;margin-bottom:16px;">`)
	b.WriteString(code)
	b.WriteString(`</div>
        <p style="display:inline-block;color:`)
	b.WriteString(p.accent)
	b.WriteString(`;margin:0;padding:8px 16px;font-size:13px;font-weight:600;">`)
	b.WriteString(p.validFor)
	b.WriteString(`</p>
      </div>
    </td></tr>
    </table>
`)
	b.WriteString(p.notes)
	b.WriteString(`
  </td></tr>
  <tr><td style="background:linear-gradient(135deg,#f7fafc 0%,#edf2f7 100%);padding:30px 40px;border-top:1px solid #e2e8f0;text-align:center;">
    <p style="color:#a0aec0;margin:0 0 8px 0;font-size:13px;font-weight:500;">Unit Activity UKDC</p>
    <p style="color:#cbd5e0;margin:0;font-size:12px;">© 2025 All rights reserved.</p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`)
	return b.String()
}

// RenderVerification returns the HTML body of an email verification message.
func RenderVerification(code string) string {
	return verificationPage.render(code)
}

// RenderPasswordReset returns the HTML body of a password reset message.
func RenderPasswordReset(code string) string {
	return passwordResetPage.render(code)
}

type TemplateRenderer struct{}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{}
}

func (r *TemplateRenderer) Render(kind mail.Kind, code mail.Code) (string, error) {
	switch kind {
	case mail.KindVerification:
		return RenderVerification(string(code)), nil
	case mail.KindPasswordReset:
		return RenderPasswordReset(string(code)), nil
	default:
		return "", mail.ErrUnknownKind
	}
}

package mail

const htmlTemplates = `
{{define "contact"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #c93834; border-bottom: 2px solid #c93834; padding-bottom: 10px;">New Contact Form Submission</h2>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #333;">Contact Information</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    {{- if .Company}}
    <p><strong>Company:</strong> {{.Company}}</p>{{end}}
    {{- if .Phone}}
    <p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>{{end}}
    {{- if .Region}}
    <p><strong>Growing Region:</strong> {{.Region}}</p>{{end}}
  </div>
  <div style="background: #fff; padding: 20px; border-left: 4px solid #c93834; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #333;">Message</h3>
    <p style="line-height: 1.6; color: #555;">{{body .Message}}</p>
  </div>
  <div style="background: #e8f5e8; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #333;">Visitor Information</h3>
    <p><strong>IP Address:</strong> {{.Visitor.IP}}</p>
    {{- with .Visitor.Location}}
    <p><strong>Location:</strong> {{.City}}, {{.Region}}, {{.Country}}</p>
    {{- if .Zip}}
    <p><strong>ZIP:</strong> {{.Zip}}</p>{{end}}
    <p><strong>Timezone:</strong> {{.Timezone}}</p>
    {{- else}}
    <p><strong>Location:</strong> Unable to determine</p>{{end}}
    <p><strong>Device:</strong> {{.Visitor.Device.Kind}}</p>
    <p><strong>OS:</strong> {{.Visitor.Device.OS}}</p>
    <p><strong>Browser:</strong> {{.Visitor.Device.Browser}}</p>
    <p><strong>Referrer:</strong> {{.Visitor.Referrer}}</p>
  </div>
  <div style="background: #f1f3f4; padding: 15px; border-radius: 6px; margin-top: 30px;">
    <p style="margin: 0; font-size: 12px; color: #666;">
      <strong>Submitted:</strong> {{.Submitted}}<br>
      <strong>Source:</strong> {{.Source}}
    </p>
  </div>
</div>{{end}}

{{define "application"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #6E903C; border-bottom: 2px solid #6E903C; padding-bottom: 10px;">New Job Application</h2>
  <div style="background: #e8f5e8; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #333;">Applicant Information</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    {{- if .Phone}}
    <p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>{{end}}
    <p><strong>Position:</strong> {{.Position}}</p>
  </div>
  {{- if .Message}}
  <div style="background: #fff; padding: 20px; border-left: 4px solid #6E903C; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #333;">Cover Letter / Message</h3>
    <p style="line-height: 1.6; color: #555;">{{body .Message}}</p>
  </div>{{end}}
  <div style="background: #fdbd51; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 0; color: #333;"><strong>Resume:</strong> {{if .ResumeName}}{{.ResumeName}} (attached){{else}}Not provided{{end}}</p>
  </div>
  <div style="background: #f1f3f4; padding: 15px; border-radius: 6px; margin-top: 30px;">
    <p style="margin: 0; font-size: 12px; color: #666;">
      <strong>Submitted:</strong> {{.Submitted}}<br>
      <strong>IP Address:</strong> {{.IP}}<br>
      <strong>Source:</strong> {{.Source}}
    </p>
  </div>
</div>{{end}}

{{define "confirmation"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #6E903C; border-bottom: 2px solid #6E903C; padding-bottom: 10px;">Thank You for Your Application</h2>
  <p style="line-height: 1.6; color: #333;">Dear {{.Name}},</p>
  <p style="line-height: 1.6; color: #333;">
    Thank you for your interest in joining California Berry Cultivars. We have received
    your application for the <strong>{{.Position}}</strong> position.
  </p>
  <p style="line-height: 1.6; color: #333;">
    Our team will review your application and reach out if your qualifications match
    our current needs. Please allow 1-2 weeks for us to review all applications.
  </p>
  <p style="line-height: 1.6; color: #333;">
    Best regards,<br>
    <strong>California Berry Cultivars</strong><br>
    <a href="https://cbcberry.com">cbcberry.com</a>
  </p>
  <div style="background: #f1f3f4; padding: 15px; border-radius: 6px; margin-top: 30px;">
    <p style="margin: 0; font-size: 12px; color: #666;">This is an automated confirmation. Please do not reply to this email.</p>
  </div>
</div>{{end}}
`

const textTemplates = `
{{define "contact"}}New Contact Form Submission

CONTACT INFORMATION:
Name: {{plain .Name}}
Email: {{plain .Email}}
{{if .Company}}Company: {{plain .Company}}
{{end}}{{if .Phone}}Phone: {{plain .Phone}}
{{end}}{{if .Region}}Growing Region: {{plain .Region}}
{{end}}
MESSAGE:
{{plain .Message}}

VISITOR INFORMATION:
IP: {{.Visitor.IP}}
{{with .Visitor.Location}}Location: {{.City}}, {{.Region}}, {{.Country}}{{else}}Location: Unable to determine{{end}}
Device: {{.Visitor.Device.Kind}} - {{.Visitor.Device.OS}} - {{.Visitor.Device.Browser}}
Referrer: {{.Visitor.Referrer}}

Submitted: {{.Submitted}}
Source: {{plain .Source}}
{{end}}

{{define "application"}}New Job Application

APPLICANT INFORMATION:
Name: {{plain .Name}}
Email: {{plain .Email}}
{{if .Phone}}Phone: {{plain .Phone}}
{{end}}Position: {{plain .Position}}
{{if .Message}}
COVER LETTER / MESSAGE:
{{plain .Message}}
{{end}}
Resume: {{if .ResumeName}}{{.ResumeName}} (attached){{else}}Not provided{{end}}

Submitted: {{.Submitted}}
IP: {{.IP}}
Source: {{.Source}}
{{end}}

{{define "confirmation"}}Thank You for Your Application

Dear {{plain .Name}},

Thank you for your interest in joining California Berry Cultivars. We have received
your application for the {{plain .Position}} position.

Our team will review your application and reach out if your qualifications match
our current needs. Please allow 1-2 weeks for us to review all applications.

Best regards,
California Berry Cultivars
cbcberry.com

---
This is an automated confirmation. Please do not reply to this email.
{{end}}
`

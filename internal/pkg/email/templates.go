package email

// Email templates. Each message has an HTML body wrapped in BaseTemplate and
// a plain text body.

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: Georgia, 'Times New Roman', serif;
            background-color: #f6f3ee;
            color: #2b2b2b;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 8px;
            padding: 32px;
            border: 1px solid #e4ddd2;
        }
        h2 {
            font-size: 22px;
            margin: 0 0 16px;
        }
        p {
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 16px;
        }
        table.summary {
            width: 100%;
            border-collapse: collapse;
            margin: 16px 0 24px;
        }
        table.summary th {
            text-align: left;
            width: 30%;
            padding: 6px 0;
            color: #8a7f70;
            font-weight: normal;
        }
        table.summary td {
            padding: 6px 0;
        }
        .total td {
            font-weight: bold;
            border-top: 1px solid #e4ddd2;
        }
        .footer {
            text-align: center;
            margin-top: 24px;
            color: #8a7f70;
            font-size: 13px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            {{.Content}}
        </div>
        <div class="footer">{{.SiteName}}</div>
    </div>
</body>
</html>
`

// BookingConfirmationTemplate is sent to the customer
const BookingConfirmationTemplate = `
<h2>Hi {{.Name}},</h2>
<p>Thank you for your booking! Here is a summary:</p>
<table class="summary">
    <tr><th>Session</th><td>{{.Sessions}}</td></tr>
    <tr><th>Add-ons</th><td>{{.Addons}}</td></tr>
    <tr><th>Date</th><td>{{.Date}}</td></tr>
    <tr class="total"><th>Total</th><td>{{.Total}}</td></tr>
</table>
<p>We will be in touch to confirm your appointment.</p>
<p>Kind regards,<br>{{.SiteName}}</p>
`

// BookingConfirmationText is the plain text variant of BookingConfirmationTemplate
const BookingConfirmationText = `Hi {{.Name}},

Thank you for your booking! Here is a summary:

Session: {{.Sessions}}
Add-ons: {{.Addons}}
Date: {{.Date}}
Total: {{.Total}}

We will be in touch to confirm your appointment.

Kind regards,
{{.SiteName}}`

// BookingNotificationTemplate is sent to the studio
const BookingNotificationTemplate = `
<h2>A new booking has been submitted.</h2>
<table class="summary">
    <tr><th>Name</th><td>{{.Name}}</td></tr>
    <tr><th>Email</th><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
    <tr><th>Phone</th><td>{{.Phone}}</td></tr>
    <tr><th>Session</th><td>{{.Sessions}}</td></tr>
    <tr><th>Add-ons</th><td>{{.Addons}}</td></tr>
    <tr><th>Date</th><td>{{.Date}}</td></tr>
    <tr class="total"><th>Total</th><td>{{.Total}}</td></tr>
</table>
<p>Booking #{{.BookingID}}. Open the admin bookings list to manage bookings.</p>
`

// BookingNotificationText is the plain text variant of BookingNotificationTemplate
const BookingNotificationText = `A new booking has been submitted.

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Session: {{.Sessions}}
Add-ons: {{.Addons}}
Date: {{.Date}}
Total: {{.Total}}

Booking #{{.BookingID}}. Open the admin bookings list to manage bookings.`

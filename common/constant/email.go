package constant

const EmailTicketsIssuedTemplate = `
Hello,

Your payment has been confirmed and your tickets are ready.

✅ PURCHASE COMPLETED ✅

Purchase Details:
------------------------------------------
Purchase ID: %s
Ticket Tier: %s
Quantity: %d
Total Paid: %s
Payment Signature: %s
------------------------------------------

Tickets:
%s
Show the QR code of each ticket at the venue entrance.

If you have any questions, please contact our support team at support@tickto.app.

Best regards,
Tickto Team

Note: This is an automated message, please do not reply to this email.
`

const EmailTicketLineTemplate = "  • Ticket %s (token %s) QR %s\n"

const EmailIssuanceFailedSupportTemplate = `
Manual reconciliation required.

A payment was confirmed on the ledger but tickets could not be issued.

Reconciliation Details:
------------------------------------------
Payment Signature: %s
Buyer ID: %s
Event ID: %s
Tier: %s (%s)
Quantity: %d
Amount: %s
From: %s
To: %s
Error: %s
------------------------------------------

Resume with: POST /api/receipts/%s/resume
`

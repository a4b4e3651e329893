package constant

const (
	QueueStreamName = "tickto_queue_stream"
)

const (
	AllWildcard      = "events.>"
	PurchaseWildcard = "events.purchase.>"
	EmailWildcard    = "events.email.>"

	SubjectResumePurchase = "events.purchase.resume"
	SubjectSendEmail      = "events.email.send"
)

// Core NATS subjects, outside the work queue stream.
const (
	PurchaseStateSubject   = "purchase.state.%s"
	WalletSignatureSubject = "wallet.signature.%s"
)

const (
	BuyerChannel = "user-%s"
)

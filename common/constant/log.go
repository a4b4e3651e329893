package constant

const (
	LogFieldErr      = "error"
	LogFieldPayload  = "payload"
	LogFieldResponse = "response"
	LogFieldTraceId  = "trace_id"

	LogFieldPurchaseId = "purchase_id"
	LogFieldSignature  = "signature"
	LogFieldBuyerId    = "buyer_id"
	LogFieldState      = "state"
	LogFieldKind       = "kind"
)

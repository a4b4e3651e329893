package constant

const (
	MinTicketQuantity = 1
	MaxTicketQuantity = 5

	QrCodePrefix          = "TICKTO"
	QrCodeEventPrefixSize = 8
	QrCodeRandomSize      = 10

	FreeReceiptPrefix = "free-"
)

const (
	ChainSolana    = "solana"
	LamportsPerSol = 1_000_000_000
	SolanaDecimals = 9
)

package constant

import "time"

const (
	PurchaseSnapshotKey = "purchase:%s:snapshot"
)

const (
	PurchaseSnapshotDefaultTTL = 24 * time.Hour
)

const (
	ReconcileLockKey = "reconcile:lock"
)

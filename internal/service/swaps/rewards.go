package swaps

// Rewards and notification texts for the two workflow transitions. The
// texts are user-facing and deliberately German, like the rest of the
// product surface.
const (
	gamificationSwapPoints     = 10
	gamificationSwapBadge      = "retter"
	gamificationApprovalPoints = 5
	gamificationApprovalBadge  = "zuverlaessig"

	notifySwapTitle       = "Ersatzdienst bestätigt"
	notifySwapMessage     = "Danke, dass du den Ersatzdienst übernommen hast."
	notifyApprovalTitle   = "Einsatz bestätigt"
	notifyApprovalMessage = "Dein Einsatz wurde bestätigt. Vielen Dank!"
)

package htmx

// Response headers.
const (
	HeaderHXLocation           = "HX-Location"
	HeaderHXPushURL            = "HX-Push-Url"
	HeaderHXRedirect           = "HX-Redirect"
	HeaderHXRefresh            = "HX-Refresh"
	HeaderHXReplaceURL         = "HX-Replace-Url"
	HeaderHXReswap             = "HX-Reswap"
	HeaderHXRetarget           = "HX-Retarget"
	HeaderHXReselect           = "HX-Reselect"
	HeaderHXTrigger            = "HX-Trigger"
	HeaderHXTriggerAfterSwap   = "HX-Trigger-After-Swap"
	HeaderHXTriggerAfterSettle = "HX-Trigger-After-Settle"
)

// Request headers sent by htmx itself.
const (
	HeaderHXRequest               = "HX-Request"
	HeaderHXBoosted               = "HX-Boosted"
	HeaderHXCurrentURL            = "HX-Current-URL"
	HeaderHXHistoryRestoreRequest = "HX-History-Restore-Request"
	HeaderHXPrompt                = "HX-Prompt"
	HeaderHXTarget                = "HX-Target"
	HeaderHXTriggerName           = "HX-Trigger-Name"
)

const headerTrue = "true"

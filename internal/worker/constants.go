package worker

// ===========================
// Log Messages
// ===========================

const (
	LogMsgWorkerJobFailed   = "Background job failed"
	LogMsgWorkerJobPanicked = "Background job panicked"
	LogMsgWorkerQueueFull   = "Job queue full, job dropped"
)

const (
	LogMsgRolloverStarting  = "Day rollover starting"
	LogMsgRolloverCompleted = "Day rollover completed"
	LogMsgRolloverFailed    = "Day rollover failed"
	LogMsgRolloverStandby   = "Day rollover standby"
	LogMsgRolloverApproach  = "Day rollover scheduled"
)

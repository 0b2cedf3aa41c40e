package usecase

const (
	logPrefixRoute = "internal.guardian.usecase.Route"

	statusOK    = "ok"
	statusError = "error"
)

// Error kinds reported in error.details.kind.
const (
	kindGateway        = "gateway"
	kindClassification = "classification"
	kindRouting        = "routing"
	kindValidation     = "validation"
	kindPipeline       = "pipeline"
	kindInternal       = "internal"
)

// Metadata keys projected into a THREAT_TRIAGE request.
const (
	metaURL     = "url"
	metaUPIID   = "upi_id"
	metaChannel = "channel"
)

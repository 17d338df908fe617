package oneandone

import (
	"oneandone-compute/pkg/compute"
)

const (
	// DefaultAPIVersion is the API version used when none is requested
	DefaultAPIVersion = "v1"

	// DefaultPerPage is the default page size hint forwarded to the API.
	// The v1 endpoints used by this driver do not paginate, so the hint is
	// currently inert.
	DefaultPerPage = 200
)

// Options carries optional construction parameters for a driver
type Options struct {
	// Secret is accepted alongside the token for legacy driver variants.
	// The v1 variant authenticates with the token alone.
	Secret string

	// Host, Port and Insecure override the default API endpoint
	Host     string
	Port     int
	Insecure bool

	// PerPage is a page size hint, defaulting to DefaultPerPage
	PerPage int
}

// driverFactory builds a concrete driver variant for one API version
type driverFactory func(key string, opts Options) compute.NodeDriver

// driverVersions is the version dispatch table. Future API versions register
// their constructors here.
var driverVersions = map[string]driverFactory{
	"v1": newV1Driver,
}

// NewDriver returns the driver variant for the requested API version. The key
// is required; an empty apiVersion selects DefaultAPIVersion. Requesting a
// version with no registered variant fails with an UnsupportedVersionError.
func NewDriver(key, apiVersion string, opts Options) (compute.NodeDriver, error) {
	if key == "" {
		return nil, &InvalidCredentialsError{Message: "key missing for v1 authentication"}
	}

	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	factory, ok := driverVersions[apiVersion]
	if !ok {
		return nil, &UnsupportedVersionError{Version: apiVersion}
	}

	if opts.PerPage == 0 {
		opts.PerPage = DefaultPerPage
	}

	return factory(key, opts), nil
}

package app

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/aussiebroadwan/pahiram/internal/auth/service"
)

//go:embed defaults.yaml
var embeddedDefaults []byte

// LoadDefaultsPolicy reads the new user policy from path, or the embedded
// policy when path is empty.
func LoadDefaultsPolicy(path string) (service.PolicyConfig, error) {
	if path == "" {
		return service.ParsePolicyConfig(bytes.NewReader(embeddedDefaults))
	}

	f, err := os.Open(path)
	if err != nil {
		return service.PolicyConfig{}, fmt.Errorf("open defaults policy: %w", err)
	}
	defer f.Close()

	return service.ParsePolicyConfig(f)
}

package descriptions

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	_ "embed"
)

//go:embed certified_copy_descriptions.yaml
var descriptionsYAML []byte

// Provider renders item descriptions from the embedded descriptions file.
// The file holds simple templates with {company-number} style placeholders,
// matching the format shared across ordering services.
type Provider struct {
	templates map[string]string
}

// NewProvider parses the embedded descriptions file. Fails only if the
// embedded file is malformed, which would be a build defect.
func NewProvider() (*Provider, error) {
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(descriptionsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse descriptions file: %w", err)
	}
	templates, ok := doc["certified-copy"]
	if !ok {
		return nil, fmt.Errorf("descriptions file missing certified-copy section")
	}
	return &Provider{templates: templates}, nil
}

// CertifiedCopyDescription returns the rendered description for a company
// number along with the values used to render it.
func (p *Provider) CertifiedCopyDescription(companyNumber string) (string, map[string]string) {
	tmpl := p.templates["certified-copy-description"]
	rendered := strings.ReplaceAll(tmpl, "{company-number}", companyNumber)
	return rendered, map[string]string{
		"company_number":             companyNumber,
		"certified-copy-description": rendered,
	}
}

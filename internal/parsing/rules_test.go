package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPersonalInfo_FullContactBlock(t *testing.T) {
	preamble := "Jane Doe\njane.doe@example.com\n(555) 123-4567\nlinkedin.com/in/janedoe\nhttps://janedoe.dev"

	info := extractPersonalInfo(preamble)

	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "jane.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", info.LinkedIn)
	assert.Equal(t, "https://janedoe.dev", info.Website)
}

func TestExtractPersonalInfo_EmailDomainIsNotAWebsite(t *testing.T) {
	info := extractPersonalInfo("Jane Doe\njane@example.com")

	assert.Equal(t, "jane@example.com", info.Email)
	assert.Empty(t, info.Website)
}

func TestExtractPersonalInfo_InternationalPhone(t *testing.T) {
	info := extractPersonalInfo("John Smith\n+1 415 555 0199")
	assert.Equal(t, "+1 415 555 0199", info.Phone)
}

func TestExtractPersonalInfo_Address(t *testing.T) {
	info := extractPersonalInfo("Jane Doe\n42 Main Street, Springfield")
	assert.Equal(t, "42 Main Street, Springfield", info.Address)
}

func TestExtractPersonalInfo_MissingFieldsStayEmpty(t *testing.T) {
	info := extractPersonalInfo("Some introductory paragraph that is not contact info at all")

	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.Empty(t, info.LinkedIn)
}

func TestExtractName_SkipsContactLines(t *testing.T) {
	preamble := "jane@example.com\nJane Doe\n(555) 123-4567"
	info := extractPersonalInfo(preamble)
	assert.Equal(t, "Jane Doe", info.Name)
}

func TestExtractName_RejectsNonNames(t *testing.T) {
	info := extractPersonalInfo("CURRICULUM VITAE 2024\nexperienced software engineer")
	assert.Empty(t, info.Name)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `personalInfo:
  fullName: Jane Doe
  jobTitle: Engineer
workExperience:
  - company: Acme
    position: Engineer
    startDate: "2020-01"
    endDate: "2021-05"
    current: true
skills:
  technical: " React, Node.js ,  "
`

func TestReadDocumentYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "resume.yaml")
	require.NoError(t, os.WriteFile(p, []byte(sampleYAML), 0o644))

	d, err := readDocument(p)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", d.PersonalInfo.FullName)
	require.Len(t, d.WorkExperience, 1)
	assert.Empty(t, d.WorkExperience[0].EndDate)
	assert.NotNil(t, d.Education)
}

func TestReadDocumentJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"personalInfo":{"fullName":"Jane"},"education":[{"institution":"MIT","degree":"BSc"}]}`), 0o644))

	d, err := readDocument(p)
	require.NoError(t, err)
	assert.Equal(t, "Jane", d.PersonalInfo.FullName)
	assert.Equal(t, "MIT", d.Education[0].Institution)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinding_SourceLabel(t *testing.T) {
	reg := Finding{Source: SourceRegulatory}
	assert.Equal(t, "SEC EDGAR", reg.SourceLabel())

	news := Finding{Source: SourceNews, Publisher: "Reuters"}
	assert.Equal(t, "News: Reuters", news.SourceLabel())
}

func TestFinding_HasIndividual(t *testing.T) {
	assert.False(t, Finding{}.HasIndividual())
	assert.True(t, Finding{Individual: "Jane Smith"}.HasIndividual())
}

package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_KnownTypes(t *testing.T) {
	tests := []struct {
		name         string
		revisionType string
		wantFragment string
	}{
		{
			name:         "fiche",
			revisionType: "fiche",
			wantFragment: "fiche de révision",
		},
		{
			name:         "qcm",
			revisionType: "qcm",
			wantFragment: "QCM de 10 questions",
		},
		{
			name:         "flashcard",
			revisionType: "flashcard",
			wantFragment: "10 flashcards",
		},
		{
			name:         "resume",
			revisionType: "resume",
			wantFragment: "résumé synthétique",
		},
		{
			name:         "trous",
			revisionType: "trous",
			wantFragment: "texte à trous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := For("maths", tt.revisionType)
			assert.Contains(t, got, "maths")
			assert.Contains(t, got, tt.wantFragment)
		})
	}
}

func TestFor_UnknownTypeFallsBackToFiche(t *testing.T) {
	subjects := []string{"maths", "francais", "histoire-geo", ""}
	for _, subject := range subjects {
		assert.Equal(t, For(subject, "fiche"), For(subject, "unknown-type"))
		assert.Equal(t, For(subject, "fiche"), For(subject, ""))
	}
}

func TestFor_SubjectIsInterpolatedOnce(t *testing.T) {
	got := For("physique-chimie", "qcm")
	assert.Equal(t, 1, strings.Count(got, "physique-chimie"))
	assert.True(t, strings.HasPrefix(got, "Tu es un expert pédagogue français"))
}

package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAuditVerdictDivergent(t *testing.T) {
	raw := `{"letraIdentificada": "c", "logica": "a explicação defende a letra C"}`

	result, err := normalizeAuditVerdict(raw, "B")
	require.NoError(t, err)
	require.True(t, result.IsDivergent)
	require.Equal(t, "C", result.ExplanationAnswer)
	require.Contains(t, result.Reason, "Divergência detectada")
}

func TestNormalizeAuditVerdictConsistent(t *testing.T) {
	result, err := normalizeAuditVerdict(`{"letraIdentificada": "B"}`, "b")
	require.NoError(t, err)
	require.False(t, result.IsDivergent)
	require.Equal(t, "B", result.ExplanationAnswer)
}

func TestNormalizeAuditVerdictChattyOutput(t *testing.T) {
	raw := "Sure, here is the result:\n```json\n{\"letraIdentificada\": \"A\", \"logica\": \"x\"}\n```"

	result, err := normalizeAuditVerdict(raw, "D")
	require.NoError(t, err)
	require.True(t, result.IsDivergent)
	require.Equal(t, "A", result.ExplanationAnswer)
}

func TestNormalizeAuditVerdictUnusableLetter(t *testing.T) {
	result, err := normalizeAuditVerdict(`{"letraIdentificada": "nenhuma"}`, "A")
	require.NoError(t, err)
	require.False(t, result.IsDivergent)
	require.Empty(t, result.ExplanationAnswer)
}

func TestNormalizeAuditVerdictNoJSON(t *testing.T) {
	_, err := normalizeAuditVerdict("the model refused to answer", "A")
	require.Error(t, err)
}

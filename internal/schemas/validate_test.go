package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTopicList_Valid(t *testing.T) {
	body := `{"data":{"categoryTopicList":{"edges":[{"node":{"id":"123","title":"Amazon SDE"}},{"node":{"id":456}}]}}}`
	assert.NoError(t, ValidateTopicList(body))
}

func TestValidateTopicList_EmptyEdges(t *testing.T) {
	assert.NoError(t, ValidateTopicList(`{"data":{"categoryTopicList":{"edges":[]}}}`))
}

func TestValidateTopicList_MissingData(t *testing.T) {
	err := ValidateTopicList(`{"errors":[{"message":"rate limited"}]}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateTopicList_NodeWithoutID(t *testing.T) {
	err := ValidateTopicList(`{"data":{"categoryTopicList":{"edges":[{"node":{"title":"x"}}]}}}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "id")
}

func TestValidateTopicContent_Valid(t *testing.T) {
	assert.NoError(t, ValidateTopicContent(`{"data":{"topic":{"id":1,"post":{"content":"Q1: hello"}}}}`))
}

func TestValidateTopicContent_NullTopic(t *testing.T) {
	err := ValidateTopicContent(`{"data":{"topic":null}}`)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateTopicContent_Malformed(t *testing.T) {
	err := ValidateTopicContent(`<html>blocked</html>`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_WrongType(t *testing.T) {
	schema := `{"type":"object","properties":{"n":{"type":"integer"}}}`
	err := validateJSONString(schema, `{"n":"not a number"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "n", validationErr.Errors[0].Field)
}

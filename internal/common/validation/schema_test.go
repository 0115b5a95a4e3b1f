package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemasCompile(t *testing.T) {
	all, err := schemas()
	require.NoError(t, err)
	assert.Len(t, all, len(SchemaNames()))
	assert.Equal(t, []string{SchemaJob, SchemaProfileUpdate}, SchemaNames())
}

func TestValidateDocument_Job(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantValid  bool
		wantFields []string
	}{
		{
			name:      "minimal job",
			doc:       `{"title":"Go Developer"}`,
			wantValid: true,
		},
		{
			name:      "full job with unknown field",
			doc:       `{"title":"SRE","company":"Acme","skills":["k8s","go"],"salary":90000,"remote":true}`,
			wantValid: true,
		},
		{
			name:       "missing title",
			doc:        `{"company":"Acme"}`,
			wantFields: []string{"(root)"},
		},
		{
			name:       "wrong types",
			doc:        `{"title":"x","skills":"go","salary":"lots"}`,
			wantFields: []string{"salary", "skills"},
		},
		{
			name:       "negative salary",
			doc:        `{"title":"x","salary":-1}`,
			wantFields: []string{"salary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ValidateDocument(SchemaJob, []byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid)

			var fields []string
			for _, e := range res.Errors {
				fields = append(fields, e.Field)
				assert.NotEmpty(t, e.Code)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidateDocument_ProfileUpdate(t *testing.T) {
	res, err := ValidateDocument(SchemaProfileUpdate, []byte(`{
		"fullName": "Alice",
		"expectedSalaryRange": {"min": 200000, "max": 100000},
		"experience": [{"years": 2.5, "companies": ["Acme"]}],
		"education": [{"degree": "B.E.", "passingYear": 2019}]
	}`))
	require.NoError(t, err)
	assert.True(t, res.Valid, "min greater than max is accepted")
	assert.Empty(t, res.Error())

	res, err = ValidateDocument(SchemaProfileUpdate, []byte(`{"nickname":"al","experience":[{"companies":[]}]}`))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Error(), "invalid document")

	codes := map[string]bool{}
	for _, e := range res.Errors {
		codes[e.Code] = true
	}
	assert.True(t, codes["REQUIRED"])
	assert.True(t, codes["ADDITIONAL_PROPERTY_NOT_ALLOWED"])
}

func TestValidateDocument_NotJSON(t *testing.T) {
	res, err := ValidateDocument(SchemaJob, []byte(`{"title":`))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "PARSE_ERROR", res.Errors[0].Code)
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	_, err := ValidateDocument("resume", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

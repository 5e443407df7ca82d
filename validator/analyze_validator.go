package validator

import (
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/customerrors"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/Oudwins/zog"
)

var AnalyzeShape = zog.Shape{
	"Symbol": zog.String().Min(1).Required(zog.Message("Symbol is required for AI analysis.")),
}

var analyzeSchema = zog.Struct(AnalyzeShape)

// ValidateAnalyzeRequest checks the analyze-crypto body and surfaces the
// first issue as a ValidationError.
func ValidateAnalyzeRequest(req *model.AnalyzeRequest) error {
	issues := analyzeSchema.Validate(req)
	if len(issues) == 0 {
		return nil
	}
	for _, fieldIssues := range issues {
		for _, issue := range fieldIssues {
			return &customerrors.ValidationError{Message: issue.Message}
		}
	}
	return nil
}

package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	domainChat "github.com/rleclezio/digital-twin/domains/chat"
	pkgError "github.com/rleclezio/digital-twin/pkg/error"
)

// ValidateConverse rejects requests without a message. The error text is
// part of the widget contract.
func ValidateConverse(ctx context.Context, request domainChat.ConverseRequest) error {
	err := validation.Validate(request.Message,
		validation.Required.Error("Message is required"),
	)

	if err != nil {
		return pkgError.ValidationError("Message is required")
	}

	return nil
}

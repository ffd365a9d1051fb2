package public

import (
	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/service"
)

var authErrorRules = []shared.MappedError{
	{Target: service.ErrUsernameExists, Code: response.CodeConflict},
	{Target: service.ErrEmailExists, Code: response.CodeConflict},
	{Target: service.ErrWeakPassword, Code: response.CodeBadRequest},
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized},
	{Target: service.ErrUserNotFound, Code: response.CodeNotFound},
}

var catalogErrorRules = []shared.MappedError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound},
	{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound},
}

var couponErrorRules = []shared.MappedError{
	{Target: service.ErrCouponNotFound, Code: response.CodeNotFound},
	{Target: service.ErrCouponInactive, Code: response.CodeBadRequest},
	{Target: service.ErrCouponNotYetValid, Code: response.CodeBadRequest},
	{Target: service.ErrCouponExpired, Code: response.CodeBadRequest},
	{Target: service.ErrCouponUsageLimit, Code: response.CodeBadRequest},
	{Target: service.ErrCouponMinPurchase, Code: response.CodeBadRequest},
	{Target: service.ErrCouponNotApplicable, Code: response.CodeBadRequest},
	{Target: service.ErrCouponFirstOrderOnly, Code: response.CodeBadRequest},
	{Target: service.ErrCouponInvalid, Code: response.CodeBadRequest},
}

var cartErrorRules = []shared.MappedError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound},
	{Target: service.ErrCartItemNotFound, Code: response.CodeNotFound},
	{Target: service.ErrInsufficientStock, Code: response.CodeBadRequest},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest},
}

var wishlistErrorRules = []shared.MappedError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound},
	{Target: service.ErrWishlistItemNotFound, Code: response.CodeNotFound},
	{Target: service.ErrWishlistItemExists, Code: response.CodeBadRequest},
}

var orderErrorRules = shared.ConcatMappedErrors([]shared.MappedError{
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound},
	{Target: service.ErrForbidden, Code: response.CodeForbidden},
	{Target: service.ErrOrderInvalid, Code: response.CodeBadRequest},
	{Target: service.ErrOrderAmountMismatch, Code: response.CodeBadRequest},
	{Target: service.ErrOrderStatusInvalid, Code: response.CodeBadRequest},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest},
}, couponErrorRules)

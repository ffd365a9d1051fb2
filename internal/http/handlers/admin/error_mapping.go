package admin

import (
	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/service"
)

var categoryErrorRules = []shared.MappedError{
	{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound},
	{Target: service.ErrCategoryExists, Code: response.CodeBadRequest},
	{Target: service.ErrCategoryInUse, Code: response.CodeBadRequest},
}

var productErrorRules = []shared.MappedError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound},
	{Target: service.ErrCategoryNotFound, Code: response.CodeBadRequest},
}

var bannerErrorRules = []shared.MappedError{
	{Target: service.ErrBannerNotFound, Code: response.CodeNotFound},
}

var couponErrorRules = []shared.MappedError{
	{Target: service.ErrCouponNotFound, Code: response.CodeNotFound},
	{Target: service.ErrCouponCodeExists, Code: response.CodeBadRequest},
	{Target: service.ErrCouponDateRange, Code: response.CodeBadRequest},
	{Target: service.ErrCouponInvalid, Code: response.CodeBadRequest},
}

var orderErrorRules = []shared.MappedError{
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound},
	{Target: service.ErrOrderStatusInvalid, Code: response.CodeBadRequest},
	{Target: service.ErrOrderTransitionNotAllowed, Code: response.CodeBadRequest},
	{Target: service.ErrOrderStatusConflict, Code: response.CodeConflict},
}

var userErrorRules = []shared.MappedError{
	{Target: service.ErrUserNotFound, Code: response.CodeNotFound},
	{Target: service.ErrUsernameExists, Code: response.CodeConflict},
	{Target: service.ErrEmailExists, Code: response.CodeConflict},
	{Target: service.ErrWeakPassword, Code: response.CodeBadRequest},
	{Target: service.ErrInvalidRole, Code: response.CodeBadRequest},
	{Target: service.ErrCannotDeleteSelf, Code: response.CodeBadRequest},
}

package service

import "errors"

// 通用错误
var (
	ErrForbidden = errors.New("access denied")
)

// 认证与用户错误
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email is already registered")
	ErrUsernameExists     = errors.New("username is already taken")
	ErrWeakPassword       = errors.New("password does not meet the password policy")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrCannotDeleteSelf   = errors.New("you cannot delete your own account")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// 商品目录错误
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category name already exists")
	ErrCategoryInUse    = errors.New("category still has products")
	ErrProductNotFound  = errors.New("product not found")
	ErrBannerNotFound   = errors.New("banner not found")
)

// 优惠券错误
var (
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCouponInactive       = errors.New("coupon is not active")
	ErrCouponNotYetValid    = errors.New("coupon is not yet valid")
	ErrCouponExpired        = errors.New("coupon has expired")
	ErrCouponUsageLimit     = errors.New("coupon usage limit reached")
	ErrCouponMinPurchase    = errors.New("minimum purchase amount not met")
	ErrCouponNotApplicable  = errors.New("coupon does not apply to any item in the cart")
	ErrCouponFirstOrderOnly = errors.New("coupon is only valid for a first order")
	ErrCouponInvalid        = errors.New("invalid coupon")
	ErrCouponCodeExists     = errors.New("coupon code already exists")
	ErrCouponDateRange      = errors.New("end date must be after start date")
)

// 购物车与心愿单错误
var (
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrWishlistItemExists   = errors.New("product is already in the wishlist")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)

// 订单错误
var (
	ErrOrderNotFound             = errors.New("order not found")
	ErrOrderInvalid              = errors.New("invalid order")
	ErrOrderAmountMismatch       = errors.New("order total does not match current prices")
	ErrOrderStatusInvalid        = errors.New("invalid order status")
	ErrOrderTransitionNotAllowed = errors.New("order status transition not allowed")
	ErrOrderStatusConflict       = errors.New("order status was changed concurrently")
)

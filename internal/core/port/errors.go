package port

import "errors"

// Dispatch and campaign errors. All of them are returned before any
// recipient was contacted unless stated otherwise.
var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrInvalidCampaign    = errors.New("campaign subject and content are required")
	ErrAlreadySent        = errors.New("campaign already sent")
	ErrNoRecipients       = errors.New("no active subscribers")
	ErrRender             = errors.New("render newsletter")
	ErrDispatchInProgress = errors.New("campaign dispatch already in progress")
)

// Subscriber errors.
var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrAlreadySubscribed  = errors.New("email already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// Invite claim errors. None of them mutate state.
var (
	ErrInviteNotFound    = errors.New("invite not found")
	ErrInviteAlreadyUsed = errors.New("invite already used")
	ErrInviteExpired     = errors.New("invite expired")
	ErrEmailMismatch     = errors.New("invite is restricted to another email")
)

// Identity and access errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin role required")
	ErrPrincipalNotFound  = errors.New("principal not found")
)

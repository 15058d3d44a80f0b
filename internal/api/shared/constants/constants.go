package constants

const (
	// DEFAULT_SAUNAS_LIMIT is the default page size for sauna listings
	DEFAULT_SAUNAS_LIMIT = 20
	// DEFAULT_REVIEWS_LIMIT is the default page size for review listings
	DEFAULT_REVIEWS_LIMIT = 10
	// MAX_PAGE_SIZE caps the page size of any paginated listing
	MAX_PAGE_SIZE = 100
	// SAUNA_DETAIL_REVIEW_LIMIT is the number of latest public reviews
	// embedded in the sauna detail response
	SAUNA_DETAIL_REVIEW_LIMIT = 5
	// MIN_PASSWORD_LENGTH is the minimum accepted password length at registration
	MIN_PASSWORD_LENGTH = 8
)

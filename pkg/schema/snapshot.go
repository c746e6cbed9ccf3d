package schema

const CartSnapshotSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_snapshot",
	"fields": [
		{"name": "lines", "type": {"type": "array", "items": {
			"type": "record",
			"name": "cart_line",
			"fields": [
				{"name": "product_id", "type": "long"},
				{"name": "name", "type": "string"},
				{"name": "price", "type": "double"},
				{"name": "quantity", "type": "long"}
			]
		}}}
	]
}`

type (
	CartSnapshotV1 struct {
		Lines []CartLineV1 `avro:"lines"`
	}

	CartLineV1 struct {
		ProductID int     `avro:"product_id"`
		Name      string  `avro:"name"`
		Price     float64 `avro:"price"`
		Quantity  int     `avro:"quantity"`
	}
)

const WishlistSnapshotSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "wishlist_snapshot",
	"fields": [
		{"name": "items", "type": {"type": "array", "items": {
			"type": "record",
			"name": "wishlist_item",
			"fields": [
				{"name": "product_id", "type": "long"},
				{"name": "name", "type": "string"},
				{"name": "brand", "type": "string"},
				{"name": "category", "type": "string"},
				{"name": "price", "type": "double"},
				{"name": "original_price", "type": "double"},
				{"name": "rating", "type": "double"},
				{"name": "review_count", "type": "long"},
				{"name": "in_stock", "type": "boolean"},
				{"name": "image", "type": "string"}
			]
		}}}
	]
}`

type (
	WishlistSnapshotV1 struct {
		Items []WishlistItemV1 `avro:"items"`
	}

	WishlistItemV1 struct {
		ProductID     int     `avro:"product_id"`
		Name          string  `avro:"name"`
		Brand         string  `avro:"brand"`
		Category      string  `avro:"category"`
		Price         float64 `avro:"price"`
		OriginalPrice float64 `avro:"original_price"`
		Rating        float64 `avro:"rating"`
		ReviewCount   int     `avro:"review_count"`
		InStock       bool    `avro:"in_stock"`
		Image         string  `avro:"image"`
	}
)

const UserSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "user",
	"fields": [
		{"name": "user_id", "type": "long"},
		{"name": "name", "type": "string"},
		{"name": "email", "type": "string"},
		{"name": "avatar", "type": "string"},
		{"name": "joined_at_ms", "type": "long"}
	]
}`

type UserV1 struct {
	UserID     int64  `avro:"user_id"`
	Name       string `avro:"name"`
	Email      string `avro:"email"`
	Avatar     string `avro:"avatar"`
	JoinedAtMS int64  `avro:"joined_at_ms"`
}

const RecentSearchesSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "recent_searches",
	"fields": [
		{"name": "terms", "type": {"type": "array", "items": "string"}}
	]
}`

type RecentSearchesV1 struct {
	Terms []string `avro:"terms"`
}

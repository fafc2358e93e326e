package consts

const (
	DefaultImageURL = "https://via.placeholder.com/150"
)

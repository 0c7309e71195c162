package generator

import "errors"

const (
	UseImageCompression     = true
	ImageCompressionQuality = 75
	cacheKeyReference       = "reference:"
)

var (
	// ErrNoImageData は応答に画像パーツが1つも含まれていなかったことを示します。
	ErrNoImageData = errors.New("応答に画像データが含まれていません")
	// ErrNotAnImage は参照データのMIMEタイプが画像ではなかったことを示します。
	ErrNotAnImage = errors.New("参照データが画像ではありません")
)

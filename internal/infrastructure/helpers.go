package infrastructure

import "github.com/DRSN-tech/storefront/pkg/e"

// GetExtensionFromMIME возвращает расширение файла по MIME-типу изображения.
// Поддерживает jpeg, png, webp, avif. Для остальных типов — e.ErrUnsupportedMediaType.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	case "image/avif":
		return "avif", nil
	default:
		return "", e.ErrUnsupportedMediaType
	}
}

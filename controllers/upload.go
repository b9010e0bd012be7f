package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/Sayed036/WoodLand-Hospital/configuration"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	uploadMaxRetries = 3
	uploadRetryDelay = 2 * time.Second
	uploadTimeout    = 3 * time.Minute
)

// UploadImage pushes an image to the cloudinary folder and returns its
// URL. Uploads are retried a fixed number of times with a fixed delay;
// after that the operation fails without taking the request pipeline
// down with it.
func UploadImage(file io.Reader, folder string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= uploadMaxRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		result, err := configuration.Cloudinary.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
			Folder: folder,
		})
		cancel()

		if err == nil && result.SecureURL != "" {
			return result.SecureURL, nil
		}
		if err == nil {
			err = fmt.Errorf("upload returned no URL: %s", result.Error.Message)
		}
		lastErr = err
		log.Printf("Image upload attempt %d/%d failed: %v", attempt, uploadMaxRetries, err)
		if attempt < uploadMaxRetries {
			time.Sleep(uploadRetryDelay)
		}
	}
	return "", fmt.Errorf("image upload failed after %d attempts: %w", uploadMaxRetries, lastErr)
}

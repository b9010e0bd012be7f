package configuration

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary holds the image store client used for profile and doctor
// photos.
var Cloudinary *cloudinary.Cloudinary

// InitCloudinary builds the cloudinary client from CLOUDINARY_URL.
func InitCloudinary() {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		log.Fatal("CLOUDINARY_URL is not set")
	}

	var err error
	Cloudinary, err = cloudinary.NewFromURL(url)
	if err != nil {
		log.Fatal("Failed to configure cloudinary: ", err)
	}
}

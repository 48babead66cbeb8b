package naisite

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nurseassist/naisite/assets"
	"github.com/nurseassist/naisite/views"
)

// bucketParam returns the requested bucket, defaulting to blog images.
func bucketParam(c echo.Context) (string, error) {
	bucket := c.QueryParam("bucket")
	if bucket == "" {
		bucket = c.FormValue("bucket")
	}
	if bucket == "" {
		return assets.BlogImages, nil
	}
	if !assets.ValidBucket(bucket) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unknown bucket")
	}
	return bucket, nil
}

func (a *App) bucketDir(bucket string) string {
	return filepath.Join(a.staticDir, bucket)
}

func (a *App) handleImageList(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	bucket, err := bucketParam(c)
	if err != nil {
		return err
	}
	images, err := a.Store.ListImages(c.Request().Context(), bucket)
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminImages(views.AdminImagesPage{
		Page:    a.adminPage(c, "Images"),
		Images:  images,
		Buckets: assets.Buckets,
		Bucket:  bucket,
	}))
}

// handleImageUpload resizes the upload to JPEG and stores it in the chosen
// bucket under a name not used on disk or in the database.
func (a *App) handleImageUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	ctx := c.Request().Context()
	bucket, err := bucketParam(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.String(http.StatusBadRequest, "No image file provided")
	}
	if file.Size > assets.MaxUploadSize {
		return c.String(http.StatusBadRequest, "File too large (max 10MB)")
	}
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, data, err := assets.Process(src, file.Filename)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}
	img.Bucket = bucket

	dir := a.bucketDir(bucket)
	var lookupErr error
	img.Filename = assets.Unique(img.Filename, func(name string) bool {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
		exists, err := a.Store.ImageExists(ctx, bucket, name)
		if err != nil {
			lookupErr = err
			return false
		}
		return exists
	})
	if lookupErr != nil {
		return lookupErr
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s dir: %w", bucket, err)
	}
	if err := os.WriteFile(filepath.Join(dir, img.Filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := a.Store.SaveImage(ctx, img); err != nil {
		return err
	}
	a.Logger.Info("image uploaded", zap.String("bucket", bucket), zap.String("filename", img.Filename), zap.Int("size", img.Size))
	return c.Redirect(http.StatusSeeOther, "/admin/images?bucket="+url.QueryEscape(bucket))
}

// handleImageDelete removes an image from disk and the database. The grid
// entry is swapped for the empty response.
func (a *App) handleImageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.NoContent(http.StatusUnauthorized)
	}
	bucket, err := bucketParam(c)
	if err != nil {
		return err
	}
	filename := filepath.Base(c.Param("filename"))
	if filename == "" || filename == "." || filename == "/" {
		return c.String(http.StatusBadRequest, "Filename required")
	}
	if err := os.Remove(filepath.Join(a.bucketDir(bucket), filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	if err := a.Store.DeleteImage(c.Request().Context(), bucket, filename); err != nil {
		return err
	}
	return c.String(http.StatusOK, "")
}

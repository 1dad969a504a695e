package v1

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
	"jobportal-backend/pkg/storage"
)

const (
	profilePictureMaxDimension = 800
	profilePictureQuality      = 80
	maxUploadBytes             = 10 << 20
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	blobs     storage.BlobStorage
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase, blobs storage.BlobStorage) {
	handler := &ProfileHandler{profileUC: profileUC, blobs: blobs}

	// Dictionaries are public read-only
	public.GET("/skills", handler.ListSkills)
	public.GET("/languages", handler.ListLanguages)

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.GetOwn)
		profile.GET("/:user_id", handler.GetByUser)
		profile.PUT("", handler.Update)
	}
}

func (h *ProfileHandler) GetOwn(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

func (h *ProfileHandler) GetByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid user id"))
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

// Update applies a multipart partial patch. Absent form keys keep the stored
// value; file parts are uploaded to blob storage and their paths saved.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := currentUserID(c)

	patch := domain.ProfilePatch{
		Description:   formValue(c, "description"),
		Currently:     formValue(c, "currently"),
		JobPreference: formValue(c, "job_preference"),
		Experience:    formValue(c, "experience"),
		ITDetails:     formValue(c, "it_details"),
		Recruiting:    formBool(c, "recruiting"),

		ExperienceEnabled:     formBool(c, "experience_enabled"),
		URLsEnabled:           formBool(c, "urls_enabled"),
		CertificationsEnabled: formBool(c, "certifications_enabled"),
		ResumeEnabled:         formBool(c, "resume_enabled"),
		SkillsEnabled:         formBool(c, "skills_enabled"),
		LanguagesEnabled:      formBool(c, "languages_enabled"),
		CurrentlyEnabled:      formBool(c, "currently_enabled"),
		JobPreferenceEnabled:  formBool(c, "job_preference_enabled"),
		ITDetailsEnabled:      formBool(c, "it_details_enabled"),

		WebsiteURLs: formValue(c, "website_urls"),
		PostedWorks: formValue(c, "posted_works"),
		Skills:      formValue(c, "skills"),
		Languages:   formValue(c, "languages"),
	}

	ctx := c.Request.Context()

	if file, err := c.FormFile("profile_picture"); err == nil {
		path, err := h.uploadPicture(c, file)
		if err != nil {
			c.Error(err)
			return
		}
		patch.ProfilePicture = &path
	}

	if file, err := c.FormFile("resume"); err == nil {
		path, err := h.uploadRaw(c, file, "resumes")
		if err != nil {
			c.Error(err)
			return
		}
		patch.Resume = &path
	}

	// Certification files arrive as certification_0, certification_1, ...
	for i := 0; ; i++ {
		file, err := c.FormFile(fmt.Sprintf("certification_%d", i))
		if err != nil {
			break
		}
		path, err := h.uploadRaw(c, file, "certifications")
		if err != nil {
			c.Error(err)
			return
		}
		patch.NewCertifications = append(patch.NewCertifications, path)
	}

	profile, err := h.profileUC.UpdateProfile(ctx, userID, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

func (h *ProfileHandler) ListSkills(c *gin.Context) {
	skills, err := h.profileUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills", skills)
}

func (h *ProfileHandler) ListLanguages(c *gin.Context) {
	languages, err := h.profileUC.ListLanguages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Languages", languages)
}

// uploadPicture downscales the image and stores it as JPEG.
func (h *ProfileHandler) uploadPicture(c *gin.Context, file *multipart.FileHeader) (string, error) {
	data, err := readUpload(file)
	if err != nil {
		return "", err
	}

	compressed, err := storage.CompressImage(data, profilePictureMaxDimension, profilePictureQuality)
	if err != nil {
		return "", apperror.BadRequest("Unsupported image format")
	}

	key := fmt.Sprintf("profile_pictures/%s.jpg", uuid.NewString())
	path, err := h.blobs.Upload(c.Request.Context(), key, bytes.NewReader(compressed), "image/jpeg")
	if err != nil {
		return "", apperror.Internal(err)
	}
	return path, nil
}

// uploadRaw stores the file as-is under the given prefix.
func (h *ProfileHandler) uploadRaw(c *gin.Context, file *multipart.FileHeader, prefix string) (string, error) {
	data, err := readUpload(file)
	if err != nil {
		return "", err
	}

	name := storage.SanitizeFilename(file.Filename)
	if name == "" {
		name = "upload"
	}
	key := fmt.Sprintf("%s/%s_%s", prefix, uuid.NewString(), name)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path, err := h.blobs.Upload(c.Request.Context(), key, bytes.NewReader(data), contentType)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return path, nil
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	if file.Size > maxUploadBytes {
		return nil, apperror.BadRequest("File too large")
	}
	src, err := file.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return data, nil
}

// formValue distinguishes "key absent" from "key present but empty".
func formValue(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

// formBool parses present keys with Python-like truthiness: "false", "0" and
// "" are false, anything else true.
func formBool(c *gin.Context, key string) *bool {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	b := v != "" && v != "0" && v != "false" && v != "False"
	return &b
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/cklob23/discipleship-journey-app/internal/database"
	"github.com/cklob23/discipleship-journey-app/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// OnboardInput defines the structure for creating a profile.
type OnboardInput struct {
	DisplayName string `json:"display_name" binding:"required" example:"Chris"`
	Role        string `json:"role" binding:"required,oneof=leader learner" example:"leader"`
	AvatarURL   string `json:"avatar_url" example:"https://example.com/avatar.png"`
}

// ProfileResponse defines the structure for a profile.
type ProfileResponse struct {
	ID          uint   `json:"id" example:"1"`
	DisplayName string `json:"display_name" example:"Chris"`
	Role        string `json:"role" example:"leader"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Email       string `json:"email,omitempty"`
}

func newProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Role:        string(p.Role),
		AvatarURL:   p.AvatarURL,
		Email:       p.Email,
	}
}

// endregion

// CreateProfile godoc
// @Summary      Complete onboarding
// @Description  Creates the role-tagged profile for the authenticated user. One profile per user; the role is permanent.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body OnboardInput true "Profile Info"
// @Success      201  {object}  ProfileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Profile already exists"
// @Router       /profiles [post]
func CreateProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input OnboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Authenticated user not found"})
		return
	}

	profile, err := directory.Onboard(c.Request.Context(), userID.(uint), input.DisplayName, models.Role(input.Role), input.AvatarURL, user.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newProfileResponse(profile))
}

// GetMyProfile godoc
// @Summary      Get current user's profile
// @Description  Retrieves the profile for the currently authenticated user.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Onboarding not completed"
// @Router       /profiles/me [get]
func GetMyProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	profile, err := directory.GetByUser(c.Request.Context(), userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(profile))
}

// GetProfileByID godoc
// @Summary      Get profile by ID
// @Description  Retrieves the public profile for a specific user.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  ProfileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profiles/{id} [get]
func GetProfileByID(c *gin.Context) {
	profileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	profile, err := directory.Get(c.Request.Context(), uint(profileID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(profile))
}

// SearchProfiles godoc
// @Summary      Search for partners
// @Description  Searches profiles by display name or email, limited to the role complementary to the requester's. Zero matches is an empty list, not an error.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Search query"
// @Success      200  {array}   ProfileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /profiles [get]
func SearchProfiles(c *gin.Context) {
	profile, ok := requireProfile(c)
	if !ok {
		return
	}

	results, err := directory.Search(c.Request.Context(), c.Query("q"), profile)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]ProfileResponse, 0, len(results))
	for i := range results {
		responses = append(responses, newProfileResponse(&results[i]))
	}

	c.JSON(http.StatusOK, responses)
}

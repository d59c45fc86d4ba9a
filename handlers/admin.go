package handlers

import (
	"net/http"

	"weddingplanner/middleware"
	"weddingplanner/models"
	"weddingplanner/services/catalog"
	"weddingplanner/services/directory"
	"weddingplanner/services/location"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdminHandler backs the admin dashboard: users, services and locations.
type AdminHandler struct {
	Users     directory.UserService
	Services  *catalog.AdminService
	Locations location.LocationService
}

func NewAdminHandler(users directory.UserService, services *catalog.AdminService, locations location.LocationService) *AdminHandler {
	return &AdminHandler{Users: users, Services: services, Locations: locations}
}

// ListUsersHandler returns live users, or the placeholder set with a
// retryable banner when the directory is down.
func (ah *AdminHandler) ListUsersHandler(c *gin.Context) {
	list := ah.Users.ListUsers(c.Request.Context())
	resp := gin.H{"users": list.Users, "placeholder": list.Placeholder}
	if list.Err != nil {
		resp["banner"] = utils.ErrorResponse{
			Message:   utils.Message(middleware.Locale(c), utils.MsgDirectoryUnavailable),
			Details:   list.Err.Error(),
			Retryable: true,
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (ah *AdminHandler) CreateUserHandler(c *gin.Context) {
	var input models.DirectoryUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindingError(err), utils.MsgValidationFailed)
		return
	}
	u, err := ah.Users.CreateUser(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, utils.MsgCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ah *AdminHandler) UpdateUserHandler(c *gin.Context) {
	var input models.DirectoryUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindingError(err), utils.MsgValidationFailed)
		return
	}
	u, err := ah.Users.UpdateUser(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err, utils.MsgUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (ah *AdminHandler) DeleteUserHandler(c *gin.Context) {
	if err := ah.Users.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, utils.MsgDeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListServicesHandler returns all four catalogs. Categories that failed to
// load are empty and named in the banner.
func (ah *AdminHandler) ListServicesHandler(c *gin.Context) {
	res := ah.Services.ListAll(c.Request.Context())
	failed := res.FailedCategories()
	resp := gin.H{"catalog": res.Catalog}
	if len(failed) > 0 {
		resp["failedCategories"] = failed
		resp["banner"] = utils.ErrorResponse{
			Message:   utils.Message(middleware.Locale(c), utils.MsgCatalogUnavailable),
			Retryable: true,
		}
	}
	c.JSON(http.StatusOK, resp)
}

func categoryParam(c *gin.Context) (models.Category, bool) {
	category, err := models.ParseCategory(c.Param("category"))
	if err != nil {
		respondError(c, utils.NewValidationError("category", err.Error()), utils.MsgValidationFailed)
		return "", false
	}
	return category, true
}

func (ah *AdminHandler) CreateServiceHandler(c *gin.Context) {
	category, ok := categoryParam(c)
	if !ok {
		return
	}
	var input struct {
		Name  string           `json:"name"`
		Price *decimal.Decimal `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindingError(err), utils.MsgValidationFailed)
		return
	}
	o, err := ah.Services.Create(c.Request.Context(), category, input.Name, input.Price)
	if err != nil {
		respondError(c, err, utils.MsgCreateFailed)
		return
	}
	getLogger(c).Info("offering created", zap.Stringer("category", category), zap.String("id", o.ID))
	c.JSON(http.StatusCreated, o)
}

func (ah *AdminHandler) UpdateServiceHandler(c *gin.Context) {
	category, ok := categoryParam(c)
	if !ok {
		return
	}
	var fields models.OfferingFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, bindingError(err), utils.MsgValidationFailed)
		return
	}
	o, err := ah.Services.Update(c.Request.Context(), category, c.Param("id"), fields)
	if err != nil {
		respondError(c, err, utils.MsgUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (ah *AdminHandler) DeleteServiceHandler(c *gin.Context) {
	category, ok := categoryParam(c)
	if !ok {
		return
	}
	if err := ah.Services.Delete(c.Request.Context(), category, c.Param("id")); err != nil {
		respondError(c, err, utils.MsgDeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ah *AdminHandler) ListLocationsHandler(c *gin.Context) {
	locs, err := ah.Locations.ListLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, utils.ErrorResponse{
			Message:   utils.Message(middleware.Locale(c), utils.MsgLoadFailed),
			Details:   err.Error(),
			Retryable: true,
		})
		return
	}
	c.JSON(http.StatusOK, locs)
}

// CreateLocationHandler accepts province_id as a number or a string.
func (ah *AdminHandler) CreateLocationHandler(c *gin.Context) {
	var input struct {
		Name       string           `json:"location_name"`
		ProvinceID utils.FlexString `json:"province_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindingError(err), utils.MsgValidationFailed)
		return
	}
	loc, err := ah.Locations.CreateLocation(c.Request.Context(), input.Name, string(input.ProvinceID))
	if err != nil {
		respondError(c, err, utils.MsgCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, loc)
}

package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"RealtyAPI/models"
	"RealtyAPI/store"
	"RealtyAPI/utils"
)

type InquiryController struct {
	store      store.Store
	cache      *utils.Cache
	collection store.Collection
}

func NewInquiryController(s store.Store, cache *utils.Cache, collection store.Collection) *InquiryController {
	return &InquiryController{
		store:      s,
		cache:      cache,
		collection: collection,
	}
}

func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	input, err := models.ParseInquiry(body)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	id, err := ic.store.Insert(ctx, ic.collection, input.Document(time.Now()))
	if err != nil {
		return err
	}
	invalidateList(ctx, ic.cache, ic.collection)

	utils.Logger.WithField("id", id).Info("inquiry created")
	return c.JSON(http.StatusOK, models.IDResponse{ID: id})
}

func (ic *InquiryController) ListInquiries(c echo.Context) error {
	limit, ok := utils.ParseLimit(c.QueryParam("limit"))
	if !ok {
		return invalidLimit()
	}

	inquiries, err := listDocuments(c.Request().Context(), ic.store, ic.cache, ic.collection, bson.M{}, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiries)
}

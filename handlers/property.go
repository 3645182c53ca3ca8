package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"RealtyAPI/models"
	"RealtyAPI/store"
	"RealtyAPI/utils"
)

type PropertyController struct {
	store      store.Store
	cache      *utils.Cache
	collection store.Collection
}

func NewPropertyController(s store.Store, cache *utils.Cache, collection store.Collection) *PropertyController {
	return &PropertyController{
		store:      s,
		cache:      cache,
		collection: collection,
	}
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	input, err := models.ParseProperty(body)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	id, err := pc.store.Insert(ctx, pc.collection, input.Document(time.Now()))
	if err != nil {
		return err
	}
	invalidateList(ctx, pc.cache, pc.collection)

	utils.Logger.WithField("id", id).Info("property created")
	return c.JSON(http.StatusOK, models.IDResponse{ID: id})
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	doc, err := pc.store.FindOne(c.Request().Context(), pc.collection, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Property not found").SetInternal(err)
		}
		return err
	}
	return c.JSON(http.StatusOK, utils.NormalizeDocument(doc))
}

// ListProperties filters by exact city and status; empty values are ignored.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	limit, ok := utils.ParseLimit(c.QueryParam("limit"))
	if !ok {
		return invalidLimit()
	}

	filter := bson.M{}
	if city := c.QueryParam("city"); city != "" {
		filter["city"] = city
	}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	properties, err := listDocuments(c.Request().Context(), pc.store, pc.cache, pc.collection, filter, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// Package handlers exposes the storefront core as a JSON API.
package handlers

import (
	"net/http"
	"strconv"

	"verdalia/internal/auth"
	"verdalia/internal/cart"
	"verdalia/internal/catalog"
	"verdalia/internal/comments"
	"verdalia/internal/history"
	"verdalia/internal/notify"
	"verdalia/internal/recommend"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler wires the HTTP routes to the domain services.
type Handler struct {
	catalog     *catalog.Catalog
	cart        *cart.Engine
	history     *history.Recorder
	gate        *auth.Gate
	comments    *comments.Service
	recommender *recommend.Recommender
	mailer      *notify.Mailer
	logger      *zap.Logger
}

// New returns a Handler over the given services.
func New(
	cat *catalog.Catalog,
	engine *cart.Engine,
	rec *history.Recorder,
	gate *auth.Gate,
	com *comments.Service,
	rcm *recommend.Recommender,
	mailer *notify.Mailer,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		catalog:     cat,
		cart:        engine,
		history:     rec,
		gate:        gate,
		comments:    com,
		recommender: rcm,
		mailer:      mailer,
		logger:      logger,
	}
}

// Register attaches every route to the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/products", h.ListProducts)
	r.GET("/products/:name", h.GetProduct)
	r.GET("/products/:name/comments", h.ListComments)
	r.POST("/products/:name/comments", h.AddComment)
	r.POST("/recommend", h.Recommend)

	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddToCart)
	r.POST("/cart/items/:index/increment", h.IncrementItem)
	r.POST("/cart/items/:index/decrement", h.DecrementItem)
	r.DELETE("/cart/items/:index", h.RemoveItem)
	r.DELETE("/cart", h.ClearCart)
	r.POST("/checkout", h.Checkout)

	r.GET("/history", h.GetHistory)
	r.GET("/history/preferences", h.GetPreferences)

	r.POST("/register", h.HandleRegister)
	r.POST("/login", h.HandleLogin)
	r.POST("/logout", h.HandleLogout)
	r.GET("/session", h.GetSession)
}

// ListProducts serves the catalog, optionally filtered by the query
// parameters bouquet (yes/no), season, difficulty, and q.
func (h *Handler) ListProducts(c *gin.Context) {
	var f catalog.Filter
	switch c.Query("bouquet") {
	case "yes":
		yes := true
		f.Bouquet = &yes
	case "no":
		no := false
		f.Bouquet = &no
	}
	f.Season = c.Query("season")
	f.Difficulty = c.Query("difficulty")
	f.Query = c.Query("q")

	products := h.catalog.Filter(f)
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.ByName(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (h *Handler) ListComments(c *gin.Context) {
	if _, ok := h.catalog.ByName(c.Param("name")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comments": h.comments.ForProduct(c.Param("name"))})
}

// AddComment appends a review. Commenting requires a signed-in user.
func (h *Handler) AddComment(c *gin.Context) {
	user := h.gate.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "sign in to comment"})
		return
	}
	product, ok := h.catalog.ByName(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "product not found"})
		return
	}

	var req struct {
		Rating int    `json:"rating"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	comment, err := h.comments.Add(product.Name, user.Username, req.Rating, req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}

// Recommend runs the quiz scoring over the catalog.
func (h *Handler) Recommend(c *gin.Context) {
	var answers recommend.Answers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	product := h.recommender.Recommend(answers)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "no plants available to recommend"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   h.cart.Items(),
		"total":   h.cart.Total(),
		"count":   h.cart.Count(),
	})
}

// AddToCart adds one unit. The request either names a catalog product
// or carries explicit name/unitPrice/image fields.
func (h *Handler) AddToCart(c *gin.Context) {
	var req struct {
		Product   string   `json:"product"`
		Name      string   `json:"name"`
		UnitPrice *float64 `json:"unitPrice"`
		Image     string   `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	name, price, image := req.Name, 0.0, req.Image
	if req.UnitPrice != nil {
		price = *req.UnitPrice
	}
	if req.Product != "" {
		product, ok := h.catalog.ByName(req.Product)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "product not found"})
			return
		}
		name, price, image = product.Name, product.Price, product.Image
	} else if name == "" || req.UnitPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name and unitPrice are required"})
		return
	}

	if err := h.cart.AddItem(name, price, image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": h.cart.Count()})
}

func (h *Handler) IncrementItem(c *gin.Context) {
	h.mutateByIndex(c, h.cart.IncrementQuantity)
}

func (h *Handler) DecrementItem(c *gin.Context) {
	h.mutateByIndex(c, h.cart.DecrementQuantity)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	h.mutateByIndex(c, h.cart.RemoveItem)
}

func (h *Handler) mutateByIndex(c *gin.Context, op func(int) error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid index"})
		return
	}
	if err := op(index); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": h.cart.Count()})
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, gin.H{"success": true, "count": 0})
}

// Checkout finalizes the cart. The purchase is recorded only for
// signed-in users; the cart empties either way and the response says
// which happened.
func (h *Handler) Checkout(c *gin.Context) {
	user := h.gate.CurrentUser()
	purchase := h.cart.Checkout(user)

	if purchase == nil {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"recorded": false,
			"message":  "cart cleared; sign in to keep a purchase history",
		})
		return
	}

	if err := h.mailer.PurchaseRecorded(purchase); err != nil {
		h.logger.Warn("order notification failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "recorded": true, "purchase": purchase})
}

func (h *Handler) GetHistory(c *gin.Context) {
	user := h.gate.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "sign in to view purchase history"})
		return
	}

	if date := c.Query("date"); date != "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "purchases": h.history.OnDate(user.Username, date)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "purchases": h.history.ForUser(user.Username)})
}

func (h *Handler) GetPreferences(c *gin.Context) {
	user := h.gate.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "sign in to view preferences"})
		return
	}
	plants, bouquets := h.history.Preferences(user.Username)
	c.JSON(http.StatusOK, gin.H{"success": true, "plants": plants, "bouquets": bouquets})
}

func (h *Handler) HandleRegister(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Confirm  string `json:"confirm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	user, err := h.gate.Register(req.Username, req.Password, req.Confirm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "username": user.Username})
}

func (h *Handler) HandleLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	user, err := h.gate.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "username": user.Username})
}

func (h *Handler) HandleLogout(c *gin.Context) {
	h.gate.Logout()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) GetSession(c *gin.Context) {
	user := h.gate.CurrentUser()
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "signedIn": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "signedIn": true, "username": user.Username})
}

package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/mel-lim/listmaker-backend/config"
	"github.com/mel-lim/listmaker-backend/models"
	"github.com/mel-lim/listmaker-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

type UserController struct {
	db          *gorm.DB
	rdb         *redis.Client
	cfg         *config.Config
	googleOauth *oauth2.Config
}

func NewUserController(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *UserController {
	return &UserController{
		db:  db,
		rdb: rdb,
		cfg: cfg,
		googleOauth: &oauth2.Config{
			RedirectURL:  cfg.GoogleRedirect,
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleSecret,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return false
		}
	}
	return true
}

func isEmail(s string) bool {
	at := strings.Index(s, "@")
	return len(s) >= 6 && at > 0 && strings.Contains(s[at:], ".")
}

// POST /appusers/signup
func (uc *UserController) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	if len(req.Username) < 2 || !isAlphanumeric(req.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username must be at least 2 alphanumeric characters"})
		return
	}
	if !isEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid email is required"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 8 characters"})
		return
	}

	// Дубликаты проверяем заранее, чтобы отдать внятное сообщение
	var count int64
	if err := uc.db.Model(&models.AppUser{}).Where("username = ?", req.Username).Count(&count).Error; err == nil && count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User with that username already exists"})
		return
	}
	if err := uc.db.Model(&models.AppUser{}).Where("email = ?", req.Email).Count(&count).Error; err == nil && count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User with that email already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
		return
	}

	user := models.AppUser{Username: req.Username, Email: req.Email, HashedPassword: hash}
	if err := uc.db.Create(&user).Error; err != nil {
		utils.LogError(err, "signup")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appUser": user})
}

// POST /appusers/login - вход по username или email
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	if (req.Username == "" && req.Email == "") || (req.Username != "" && req.Email != "") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Provide either a username or an email"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The credentials you provided are incorrect"})
		return
	}

	var user models.AppUser
	var err error
	if req.Username != "" {
		err = uc.db.Where("username = ?", req.Username).First(&user).Error
	} else {
		err = uc.db.Where("email = ?", req.Email).First(&user).Error
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The credentials you provided are incorrect"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.HashedPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The credentials you provided are incorrect"})
		return
	}

	uc.issueSession(c, &user, "cookieExpiry")
}

// GET /appusers/logout - чистит куки и отзывает токен
func (uc *UserController) Logout(c *gin.Context) {
	if token, err := c.Cookie("token"); err == nil && token != "" && uc.rdb != nil {
		ttl := utils.TokenTTL
		if claims, err := utils.ParseJWT(token, uc.cfg.JWTSecret); err == nil {
			ttl = utils.TokenRemainingTTL(claims)
		}
		if ttl > 0 {
			uc.rdb.Set(context.Background(), "blacklist:"+token, 1, ttl)
		}
	}

	utils.ClearAuthCookies(c, uc.cfg.CookieDomain, uc.cfg.IsProduction())
	c.JSON(http.StatusOK, gin.H{"message": "Log out successful", "isLoggedOut": true})
}

// GET /appusers/accountdetails
func (uc *UserController) AccountDetails(c *gin.Context) {
	var user models.AppUser
	if err := uc.db.First(&user, appUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Your details could not be found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": user.Username, "email": user.Email})
}

// POST /appusers/tryasguest - гостевой аккаунт со случайными реквизитами
func (uc *UserController) TryAsGuest(c *gin.Context) {
	if ok, msg := utils.CanCreateGuest(uc.rdb, c.ClientIP()); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"message": msg})
		return
	}

	username, email, password := utils.GuestCredentials()
	hash, err := utils.HashPassword(password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create guest user"})
		return
	}

	user := models.AppUser{Username: username, Email: email, HashedPassword: hash, IsGuest: true}
	if err := uc.db.Create(&user).Error; err != nil {
		utils.LogError(err, "tryasguest")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create guest user"})
		return
	}

	utils.MarkGuestCreated(uc.rdb, c.ClientIP())
	uc.issueSession(c, &user, "guestCookieExpiry")
}

// GET /auth/google - редирект на согласие Google
func (uc *UserController) GoogleLogin(c *gin.Context) {
	url := uc.googleOauth.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GET /auth/google/callback - обмен кода, поиск или создание пользователя
func (uc *UserController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing authorization code"})
		return
	}

	token, err := uc.googleOauth.Exchange(context.Background(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Google authorization failed"})
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Google authorization failed"})
		return
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Google authorization failed"})
		return
	}

	var user models.AppUser
	if err := uc.db.Where("email = ?", info.Email).First(&user).Error; err != nil {
		// Первый вход через Google - заводим аккаунт со случайным паролем
		username := strings.SplitN(info.Email, "@", 2)[0]
		_, _, password := utils.GuestCredentials()
		hash, err := utils.HashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
			return
		}
		user = models.AppUser{Username: username, Email: info.Email, HashedPassword: hash}
		if err := uc.db.Create(&user).Error; err != nil {
			utils.LogError(err, "google callback")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
			return
		}
	}

	uc.issueSession(c, &user, "cookieExpiry")
}

func (uc *UserController) issueSession(c *gin.Context, user *models.AppUser, expiryField string) {
	token, err := utils.GenerateJWT(user.ID, uc.cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not log you in"})
		return
	}

	utils.SetAuthCookies(c, token, user.Username, uc.cfg.CookieDomain, uc.cfg.IsProduction())

	expiry := time.Now().Add(utils.TokenTTL).Format(time.RFC3339)
	c.JSON(http.StatusOK, gin.H{"username": user.Username, expiryField: expiry})
}

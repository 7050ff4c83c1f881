package handlers

import (
	"jobdesk/internal/config"
	"jobdesk/internal/repos"
	"jobdesk/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth *services.AuthService

	AuthHandler        *AuthHandler
	OrgHandler         *OrgHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	CategoryHandler    *CategoryHandler
	AdminHandler       *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	orgRepo := repos.NewOrgRepo(db)
	jobRepo := repos.NewJobRepo(db)
	appRepo := repos.NewApplicationRepo(db)
	catRepo := repos.NewCategoryRepo(db)

	tokenSvc := services.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTLHours)
	authSvc := &services.AuthService{Users: userRepo, Tokens: tokenSvc}
	orgSvc := services.NewOrgService(orgRepo)
	jobSvc := services.NewJobService(jobRepo, orgRepo)
	appSvc := services.NewApplicationService(appRepo, jobRepo)

	return &Deps{
		Auth:               authSvc,
		AuthHandler:        &AuthHandler{Auth: authSvc},
		OrgHandler:         &OrgHandler{Orgs: orgSvc},
		JobHandler:         &JobHandler{Jobs: jobSvc},
		ApplicationHandler: &ApplicationHandler{Apps: appSvc},
		CategoryHandler:    &CategoryHandler{Cats: catRepo},
		AdminHandler:       &AdminHandler{Users: userRepo},
	}
}

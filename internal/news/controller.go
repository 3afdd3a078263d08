package news

import (
	"errors"
	"fmt"
	"net/http"

	"systers-portal/internal/auth"
	"systers-portal/internal/community"
	"systers-portal/internal/logs"
	"systers-portal/internal/middlewares"
	"systers-portal/internal/role"
	"systers-portal/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type NewsController struct {
	NewsService NewsServiceAPI
	Communities CommunityFinder
	Profiles    ProfileFinder
	Roles       PermissionChecker
	LS          LogServicePort
}

func listURL(comm *community.Community) string {
	return fmt.Sprintf("/communities/%s/news/", comm.Slug)
}

func detailURL(comm *community.Community, slug string) string {
	return fmt.Sprintf("/communities/%s/news/%s/", comm.Slug, slug)
}

// page builds the data shared by every news template.
func page(title string, comm *community.Community, profile *auth.SystersUser) gin.H {
	h := gin.H{
		"Title":     title,
		"Community": comm,
		"Username":  "",
	}
	if profile != nil {
		h["Username"] = profile.Username()
	}
	return h
}

func renderError(c *gin.Context, status int, comm *community.Community, profile *auth.SystersUser) {
	data := page("", comm, profile)
	switch status {
	case http.StatusForbidden:
		c.HTML(status, "errors/403.html", data)
	case http.StatusNotFound:
		c.HTML(status, "errors/404.html", data)
	default:
		c.String(status, http.StatusText(status))
	}
	c.Abort()
}

// requester returns the profile of the logged-in user, or nil when anonymous.
func (nc *NewsController) requester(c *gin.Context) *auth.SystersUser {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		return nil
	}
	profile, err := nc.Profiles.GetProfileByUserID(userID)
	if err != nil {
		return nil
	}
	return profile
}

func (nc *NewsController) loadCommunity(c *gin.Context, profile *auth.SystersUser) (*community.Community, bool) {
	comm, err := nc.Communities.GetCommunityBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(c, http.StatusNotFound, nil, profile)
			return nil, false
		}
		zap.L().Error("community lookup failed", zap.String("slug", c.Param("slug")), zap.Error(err))
		renderError(c, http.StatusInternalServerError, nil, profile)
		return nil, false
	}
	return comm, true
}

func (nc *NewsController) loadNews(c *gin.Context, comm *community.Community, profile *auth.SystersUser) (*News, bool) {
	n, err := nc.NewsService.GetBySlug(comm.ID, c.Param("news_slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(c, http.StatusNotFound, comm, profile)
			return nil, false
		}
		zap.L().Error("news lookup failed", zap.String("slug", c.Param("news_slug")), zap.Error(err))
		renderError(c, http.StatusInternalServerError, comm, profile)
		return nil, false
	}
	return n, true
}

func (nc *NewsController) can(profile *auth.SystersUser, comm *community.Community, perm role.Permission) bool {
	if profile == nil {
		return false
	}
	ok, err := nc.Roles.Can(profile, comm, perm)
	if err != nil {
		zap.L().Error("permission check failed",
			zap.Int("profile_id", profile.ID), zap.String("community", comm.Slug), zap.Error(err))
		return false
	}
	return ok
}

// authorize requires a logged-in requester holding perm on the community.
// Anonymous requesters get 403 before the community is looked up.
func (nc *NewsController) authorize(c *gin.Context, perm role.Permission) (*community.Community, *auth.SystersUser, bool) {
	profile := nc.requester(c)
	if profile == nil {
		renderError(c, http.StatusForbidden, nil, nil)
		return nil, nil, false
	}
	comm, ok := nc.loadCommunity(c, profile)
	if !ok {
		return nil, nil, false
	}
	if !nc.can(profile, comm, perm) {
		renderError(c, http.StatusForbidden, comm, profile)
		return nil, nil, false
	}
	return comm, profile, true
}

func (nc *NewsController) ListNews(c *gin.Context) {
	profile := nc.requester(c)
	comm, ok := nc.loadCommunity(c, profile)
	if !ok {
		return
	}

	rows, err := nc.NewsService.ListByCommunity(comm.ID)
	if err != nil {
		zap.L().Error("list news failed", zap.String("community", comm.Slug), zap.Error(err))
		renderError(c, http.StatusInternalServerError, comm, profile)
		return
	}

	data := page(comm.Name+" News", comm, profile)
	data["NewsList"] = rows
	data["CanManage"] = nc.can(profile, comm, role.AddNews)
	c.HTML(http.StatusOK, "blog/news_list.html", data)
}

func (nc *NewsController) GetNews(c *gin.Context) {
	profile := nc.requester(c)
	comm, ok := nc.loadCommunity(c, profile)
	if !ok {
		return
	}
	n, ok := nc.loadNews(c, comm, profile)
	if !ok {
		return
	}

	data := page(n.Title, comm, profile)
	data["News"] = n
	data["CanManage"] = nc.can(profile, comm, role.ChangeNews)
	c.HTML(http.StatusOK, "blog/news.html", data)
}

func formPage(title string, comm *community.Community, profile *auth.SystersUser, action, submit string, form NewsForm, errs map[string]string) gin.H {
	data := page(title, comm, profile)
	data["Action"] = action
	data["Submit"] = submit
	data["Form"] = form
	if errs == nil {
		errs = map[string]string{}
	}
	data["Errors"] = errs
	return data
}

func slugError(err error) (map[string]string, bool) {
	switch {
	case errors.Is(err, ErrSlugTaken):
		return map[string]string{"slug": "News with this Slug already exists."}, true
	case errors.Is(err, ErrReservedSlug):
		return map[string]string{"slug": "This slug is reserved, choose another one."}, true
	}
	return nil, false
}

func (nc *NewsController) AddNewsForm(c *gin.Context) {
	comm, profile, ok := nc.authorize(c, role.AddNews)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "blog/add_news.html",
		formPage("Add news", comm, profile, listURL(comm)+"add/", "Add news", NewsForm{}, nil))
}

func (nc *NewsController) AddNews(c *gin.Context) {
	comm, profile, ok := nc.authorize(c, role.AddNews)
	if !ok {
		return
	}

	var form NewsForm
	render := func(errs map[string]string) {
		c.HTML(http.StatusOK, "blog/add_news.html",
			formPage("Add news", comm, profile, listURL(comm)+"add/", "Add news", form, errs))
	}

	if err := c.ShouldBind(&form); err != nil {
		render(util.FieldErrors(err, formMessages))
		return
	}

	n := &News{
		Slug:        form.Slug,
		Title:       form.Title,
		Content:     form.Content,
		CommunityID: comm.ID,
		AuthorID:    profile.ID,
	}
	if err := nc.NewsService.Create(n); err != nil {
		if errs, ok := slugError(err); ok {
			render(errs)
			return
		}
		zap.L().Error("create news failed", zap.String("community", comm.Slug), zap.Error(err))
		renderError(c, http.StatusInternalServerError, comm, profile)
		return
	}

	nc.audit(profile, comm, "CREATE_NEWS", fmt.Sprintf("News %q created", n.Slug), form)
	c.Redirect(http.StatusFound, detailURL(comm, n.Slug))
}

func (nc *NewsController) EditNewsForm(c *gin.Context) {
	comm, profile, ok := nc.authorize(c, role.ChangeNews)
	if !ok {
		return
	}
	n, ok := nc.loadNews(c, comm, profile)
	if !ok {
		return
	}

	form := NewsForm{Slug: n.Slug, Title: n.Title, Content: n.Content}
	c.HTML(http.StatusOK, "blog/edit_news.html",
		formPage("Edit news", comm, profile, detailURL(comm, n.Slug)+"edit/", "Save", form, nil))
}

func (nc *NewsController) EditNews(c *gin.Context) {
	comm, profile, ok := nc.authorize(c, role.ChangeNews)
	if !ok {
		return
	}
	n, ok := nc.loadNews(c, comm, profile)
	if !ok {
		return
	}

	action := detailURL(comm, n.Slug) + "edit/"
	var form NewsForm
	render := func(errs map[string]string) {
		c.HTML(http.StatusOK, "blog/edit_news.html",
			formPage("Edit news", comm, profile, action, "Save", form, errs))
	}

	if err := c.ShouldBind(&form); err != nil {
		render(util.FieldErrors(err, formMessages))
		return
	}

	oldSlug := n.Slug
	if err := nc.NewsService.Update(n, form); err != nil {
		if errs, ok := slugError(err); ok {
			render(errs)
			return
		}
		zap.L().Error("update news failed", zap.String("community", comm.Slug), zap.Error(err))
		renderError(c, http.StatusInternalServerError, comm, profile)
		return
	}

	nc.audit(profile, comm, "EDIT_NEWS", fmt.Sprintf("News %q updated", oldSlug), form)
	c.Redirect(http.StatusFound, detailURL(comm, n.Slug))
}

func (nc *NewsController) DeleteNewsForm(c *gin.Context) {
	comm, profile, ok := nc.authorize(c, role.DeleteNews)
	if !ok {
		return
	}
	n, ok := nc.loadNews(c, comm, profile)
	if !ok {
		return
	}

	data := page("Delete news", comm, profile)
	data["News"] = n
	c.HTML(http.StatusOK, "blog/delete_news.html", data)
}

func (nc *NewsController) DeleteNews(c *gin.Context) {
	comm, profile, ok := nc.authorize(c, role.DeleteNews)
	if !ok {
		return
	}
	n, ok := nc.loadNews(c, comm, profile)
	if !ok {
		return
	}

	if err := nc.NewsService.Delete(n); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(c, http.StatusNotFound, comm, profile)
			return
		}
		zap.L().Error("delete news failed", zap.String("community", comm.Slug), zap.Error(err))
		renderError(c, http.StatusInternalServerError, comm, profile)
		return
	}

	nc.audit(profile, comm, "DELETE_NEWS", fmt.Sprintf("News %q deleted", n.Slug), gin.H{"id": n.ID, "title": n.Title})
	c.Redirect(http.StatusFound, listURL(comm))
}

func (nc *NewsController) ExportNews(c *gin.Context) {
	comm, profile, ok := nc.authorize(c, role.ChangeNews)
	if !ok {
		return
	}

	data, err := nc.NewsService.ExportXLSX(comm)
	if err != nil {
		zap.L().Error("export news failed", zap.String("community", comm.Slug), zap.Error(err))
		renderError(c, http.StatusInternalServerError, comm, profile)
		return
	}

	filename := fmt.Sprintf("%s-news.xlsx", comm.Slug)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (nc *NewsController) audit(actor *auth.SystersUser, comm *community.Community, action, msg string, payload any) {
	if nc.LS == nil {
		return
	}
	entry := logs.SystemLog{
		Level:     logs.LevelInfo,
		Service:   "news",
		Action:    action,
		Message:   msg,
		UserID:    &actor.UserID,
		Community: &comm.Slug,
	}
	if err := nc.LS.Log(entry, payload); err != nil {
		zap.L().Warn("failed to insert audit log", zap.String("action", action), zap.Error(err))
	}
}

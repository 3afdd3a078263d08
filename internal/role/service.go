package role

import (
	"errors"

	"systers-portal/internal/auth"
	"systers-portal/internal/community"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUnknownRole = errors.New("unknown community role")

type RoleService struct {
	DB *gorm.DB
}

// Can reports whether profile may exercise perm in comm. Superusers and the
// community admin hold every permission; everyone else needs a granting role.
func (rs *RoleService) Can(profile *auth.SystersUser, comm *community.Community, perm Permission) (bool, error) {
	if profile == nil || comm == nil {
		return false, nil
	}
	if profile.User.IsSuperuser || comm.AdminID == profile.ID {
		return true, nil
	}

	roles := rolesGranting(perm)
	if len(roles) == 0 {
		return false, nil
	}

	var count int64
	err := rs.DB.Model(&CommunityRole{}).
		Where("community_id = ? AND systers_user_id = ? AND role IN ?", comm.ID, profile.ID, roles).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AssignRole is idempotent: assigning an existing role is a no-op.
func (rs *RoleService) AssignRole(communityID, profileID int, roleName string) error {
	if !KnownRole(roleName) {
		return ErrUnknownRole
	}
	return rs.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&CommunityRole{
			CommunityID:   communityID,
			SystersUserID: profileID,
			Role:          roleName,
		}).Error
}

// RevokeRole deletes assignment id within the community; a miss returns gorm.ErrRecordNotFound.
func (rs *RoleService) RevokeRole(communityID int, id uint) error {
	result := rs.DB.Where("community_id = ? AND id = ?", communityID, id).Delete(&CommunityRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (rs *RoleService) GetRolesByCommunity(comm *community.Community) ([]RoleAssignment, error) {
	var rows []CommunityRole
	err := rs.DB.Preload("SystersUser.User").
		Where("community_id = ?", comm.ID).
		Order("role asc").Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]RoleAssignment, 0, len(rows))
	for _, r := range rows {
		out = append(out, RoleAssignment{
			ID:       r.ID,
			Username: r.SystersUser.User.Username,
			Role:     r.Role,
			Group:    GroupName(comm.Name, r.Role),
		})
	}
	return out, nil
}

func (rs *RoleService) GetRolesByProfile(profileID int) ([]CommunityRole, error) {
	rows := []CommunityRole{}
	if err := rs.DB.Where("systers_user_id = ?", profileID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

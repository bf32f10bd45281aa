// AngelaMos | 2026
// dto.go

package role

type CreateRoleRequest struct {
	Libelle string `json:"libelle" validate:"required,min=2,max=50,nametag"`
}

type UpdateRoleRequest struct {
	Libelle *string `json:"libelle,omitempty" validate:"omitempty,min=2,max=50,nametag"`
}

// AssignRoleRequest names a role by numeric id or by libelle.
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required,max=50"`
}

type RoleResponse struct {
	ID      int64  `json:"id"`
	Libelle string `json:"libelle"`
}

func ToRoleResponse(r *Role) RoleResponse {
	return RoleResponse{ID: r.ID, Libelle: r.Libelle}
}

func ToRoleResponseList(roles []Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, ToRoleResponse(&roles[i]))
	}
	return out
}

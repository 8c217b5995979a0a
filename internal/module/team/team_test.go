package team

import (
	"strconv"
	"testing"

	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/jwt"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"
	"capstone-showcase/test"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) model.User {
	test.Setup(t)
	(&ModuleTeam{}).Init()

	user := model.User{Name: "张三", Email: "zhangsan@example.com", Password: "x"}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func payloadOf(user model.User) jwt.Payload {
	return jwt.Payload{UserID: user.ID, Email: user.Email, Role: user.Role}
}

func TestCreateTeam(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, CreateTeam, TeamCreateReq{
		Name:        "Team Alpha",
		Description: "一楼的队伍",
	})
	test.NoError(t, resp)

	var team model.Team
	require.NoError(t, database.DB.Where("name = ?", "Team Alpha").First(&team).Error)
	require.Equal(t, "一楼的队伍", team.Description)
}

func TestListTeams(t *testing.T) {
	setup(t)

	// 空库返回空列表而不是错误
	resp := test.DoGet(t, ListTeams, nil)
	test.NoError(t, resp)
	require.Empty(t, resp.Data)

	require.NoError(t, database.DB.Create(&model.Team{Name: "A"}).Error)
	require.NoError(t, database.DB.Create(&model.Team{Name: "B"}).Error)

	resp = test.DoGet(t, ListTeams, nil)
	test.NoError(t, resp)
	list, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
}

func TestGetTeam(t *testing.T) {
	user := setup(t)

	team := model.Team{Name: "Team Alpha"}
	require.NoError(t, database.DB.Create(&team).Error)
	require.NoError(t, database.DB.Create(&model.TeamMember{TeamID: team.ID, UserID: user.ID}).Error)

	resp := test.DoGetParam(t, GetTeam, "id", strconv.FormatUint(uint64(team.ID), 10))
	test.NoError(t, resp)

	data := test.Data(t, resp)
	require.Equal(t, "Team Alpha", data["name"])
	members, ok := data["members"].([]any)
	require.True(t, ok)
	require.Len(t, members, 1)
}

func TestGetTeamNotFound(t *testing.T) {
	setup(t)

	resp := test.DoGetParam(t, GetTeam, "id", "9999")
	test.CodeEqual(t, response.ErrNotFound, resp)
}

func TestJoinTeam(t *testing.T) {
	user := setup(t)

	team := model.Team{Name: "Team Alpha"}
	require.NoError(t, database.DB.Create(&team).Error)

	resp := test.DoRequestAs(t, JoinTeam, JoinTeamReq{TeamID: team.ID}, payloadOf(user))
	test.NoError(t, resp)

	var member model.TeamMember
	require.NoError(t, database.DB.Where("team_id = ? AND user_id = ?", team.ID, user.ID).First(&member).Error)
}

func TestJoinTeamForOtherNeedsAdmin(t *testing.T) {
	user := setup(t)

	other := model.User{Name: "李四", Email: "lisi@example.com", Password: "x"}
	require.NoError(t, database.DB.Create(&other).Error)
	team := model.Team{Name: "Team Alpha"}
	require.NoError(t, database.DB.Create(&team).Error)

	// 普通用户不能替别人报名
	resp := test.DoRequestAs(t, JoinTeam,
		JoinTeamReq{TeamID: team.ID, UserID: other.ID}, payloadOf(user))
	test.ErrorEqual(t, response.ErrForbidden, resp)

	admin := model.User{Name: "管理员", Email: "admin@example.com", Password: "x", Role: model.RoleAdmin}
	require.NoError(t, database.DB.Create(&admin).Error)

	resp = test.DoRequestAs(t, JoinTeam,
		JoinTeamReq{TeamID: team.ID, UserID: other.ID}, payloadOf(admin))
	test.NoError(t, resp)

	var member model.TeamMember
	require.NoError(t, database.DB.Where("team_id = ? AND user_id = ?", team.ID, other.ID).First(&member).Error)
}

func TestJoinTeamNotFound(t *testing.T) {
	user := setup(t)

	resp := test.DoRequestAs(t, JoinTeam, JoinTeamReq{TeamID: 9999}, payloadOf(user))
	test.CodeEqual(t, response.ErrNotFound, resp)
}

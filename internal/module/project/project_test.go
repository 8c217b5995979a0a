package project

import (
	"encoding/json"
	"strconv"
	"testing"

	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/jwt"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"
	"capstone-showcase/test"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (model.User, model.Team) {
	test.Setup(t)
	(&ModuleProject{}).Init()

	user := model.User{Name: "张三", Email: "zhangsan@example.com", Password: "x"}
	require.NoError(t, database.DB.Create(&user).Error)
	team := model.Team{Name: "Team Alpha"}
	require.NoError(t, database.DB.Create(&team).Error)
	return user, team
}

func payloadOf(user model.User) jwt.Payload {
	return jwt.Payload{UserID: user.ID, Email: user.Email, Role: user.Role}
}

func TestCreateProject(t *testing.T) {
	user, team := setup(t)

	resp := test.DoMultipart(t, CreateProject, map[string]string{
		"team_id":     strconv.FormatUint(uint64(team.ID), 10),
		"title":       "智能垃圾桶",
		"summary":     "自动分类",
		"description": "用摄像头识别垃圾种类",
		"building":    "一号楼",
		"tags":        "ai,hardware",
		"repo_url":    "https://github.com/team1/smart-bin",
	}, []test.MultipartFile{
		{Field: "thumbnail", Filename: "cover.png", Content: []byte("png-bytes")},
		{Field: "assets", Filename: "shot1.png", Content: []byte("a")},
		{Field: "assets", Filename: "shot2.png", Content: []byte("b")},
	}, payloadOf(user))
	test.NoError(t, resp)

	var proj model.Project
	require.NoError(t, database.DB.Where("title = ?", "智能垃圾桶").First(&proj).Error)
	require.Equal(t, team.ID, proj.TeamID)
	// 未指定难度时取默认值
	require.Equal(t, "Beginner", proj.Difficulty)
	require.NotEmpty(t, proj.ThumbnailURL)

	// 素材引用按上传顺序保存
	var assetURLs []string
	require.NoError(t, json.Unmarshal(proj.AssetURLs, &assetURLs))
	require.Len(t, assetURLs, 2)
	require.Contains(t, assetURLs[0], "shot1.png")
	require.Contains(t, assetURLs[1], "shot2.png")
}

func TestCreateProjectTeamNotFound(t *testing.T) {
	user, _ := setup(t)

	resp := test.DoMultipart(t, CreateProject, map[string]string{
		"team_id":     "9999",
		"title":       "无主项目",
		"summary":     "s",
		"description": "d",
	}, nil, payloadOf(user))
	test.CodeEqual(t, response.ErrNotFound, resp)

	var count int64
	require.NoError(t, database.DB.Model(&model.Project{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestListProjects(t *testing.T) {
	_, team := setup(t)

	resp := test.DoGet(t, ListProjects, nil)
	test.NoError(t, resp)
	require.Empty(t, resp.Data)

	require.NoError(t, database.DB.Create(&model.Project{
		TeamID: team.ID, Title: "A", Summary: "s", Description: "d",
	}).Error)
	require.NoError(t, database.DB.Create(&model.Project{
		TeamID: team.ID, Title: "B", Summary: "s", Description: "d",
	}).Error)

	resp = test.DoGet(t, ListProjects, nil)
	test.NoError(t, resp)
	list, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
}

func TestGetProject(t *testing.T) {
	_, team := setup(t)

	proj := model.Project{TeamID: team.ID, Title: "A", Summary: "s", Description: "d"}
	require.NoError(t, database.DB.Create(&proj).Error)
	require.NoError(t, database.DB.Create(&model.Feedback{
		ProjectID: proj.ID, Content: "不错", Author: "路人甲",
	}).Error)

	resp := test.DoGetParam(t, GetProject, "id", strconv.FormatUint(uint64(proj.ID), 10))
	test.NoError(t, resp)

	data := test.Data(t, resp)
	require.Equal(t, "A", data["title"])
	feedbacks, ok := data["feedbacks"].([]any)
	require.True(t, ok)
	require.Len(t, feedbacks, 1)
}

func TestGetProjectNotFound(t *testing.T) {
	setup(t)

	resp := test.DoGetParam(t, GetProject, "id", "9999")
	test.CodeEqual(t, response.ErrNotFound, resp)
}

func TestLeaderboard(t *testing.T) {
	_, team := setup(t)

	// 票数相同的并列项目按 id 升序稳定排列
	for i, votes := range []int{3, 8, 3, 0} {
		require.NoError(t, database.DB.Create(&model.Project{
			TeamID: team.ID, Title: "P" + strconv.Itoa(i), Summary: "s", Description: "d",
			Votes: votes,
		}).Error)
	}

	resp := test.DoGet(t, Leaderboard, nil)
	test.NoError(t, resp)

	list, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, list, 4)

	titles := make([]string, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		require.True(t, ok)
		titles = append(titles, m["title"].(string))
	}
	require.Equal(t, []string{"P1", "P0", "P2", "P3"}, titles)
}

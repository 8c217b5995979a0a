package admin

import (
	"context"
	"encoding/json"

	"capstone-showcase/internal/global/cache"
	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// reset 清空展示数据（投票、反馈、成员、项目、团队），用户保留
// 子表先删，整个清理在一个事务里提交
func reset(c *gin.Context) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&model.Vote{},
			&model.Feedback{},
			&model.TeamMember{},
			&model.Project{},
			&model.Team{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Unscoped().Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("清库失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if cache.Enabled() {
		if err := cache.Client.Del(context.Background(), cache.LeaderboardKey).Err(); err != nil {
			log.Warn("清空排行榜缓存失败", "error", err)
		}
	}

	log.Info("展示数据已清空")
	response.Success(c)
}

// seed 写入演示数据：两个团队各带一个项目
// 已有项目数据时跳过，避免重复灌入
func seed(c *gin.Context) {
	var count int64
	if err := database.DB.Model(&model.Project{}).Count(&count).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if count > 0 {
		response.Fail(c, response.ErrAlreadyExists.WithTips("已有项目数据，跳过演示数据"))
		return
	}

	emptyAssets, _ := json.Marshal([]string{})

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		team1 := model.Team{Name: "Team Alpha", Description: "Team in Building 1"}
		team2 := model.Team{Name: "Team Beta", Description: "Team in Building 2"}
		if err := tx.Create(&team1).Error; err != nil {
			return err
		}
		if err := tx.Create(&team2).Error; err != nil {
			return err
		}

		projects := []model.Project{
			{
				TeamID:       team1.ID,
				Title:        "Smart Recycling Bin",
				Summary:      "AI-assisted waste sorting",
				Description:  "Uses AI to sort waste automatically.",
				Building:     "Building 1",
				Members:      "Alex, Lewis, Magdi, Naveed",
				RepoURL:      "https://github.com/team1/smart-bin",
				LiveDemoURL:  "https://demo.smartbin.com",
				VideoURL:     "https://youtu.be/LJYWRTRJThY",
				Difficulty:   "Beginner",
				AssetURLs:    datatypes.JSON(emptyAssets),
				ThumbnailURL: "https://techcrunch.com/wp-content/uploads/2022/08/R1_TrashBot.jpg",
			},
			{
				TeamID:       team2.ID,
				Title:        "Drone Delivery System",
				Summary:      "Campus snack delivery by drone",
				Description:  "Delivers snacks across campus with drones.",
				Building:     "Building 2",
				Members:      "Michael, Xan, Yuma, Justin",
				RepoURL:      "https://github.com/team2/delivery-drone",
				LiveDemoURL:  "https://drone.demo.com",
				VideoURL:     "https://youtu.be/Hhp11I-vGHA",
				Difficulty:   "Beginner",
				AssetURLs:    datatypes.JSON(emptyAssets),
				ThumbnailURL: "",
			},
		}
		for i := range projects {
			if err := tx.Create(&projects[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("写入演示数据失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("演示数据写入成功")
	response.Success(c)
}

package database

import (
	"github.com/mel-lim/listmaker-backend/models"

	"gorm.io/gorm"
)

type templateSeed struct {
	title     string
	category  string
	duration  string
	itemNames []string
}

// Шаблонные списки. trip_duration = "any" попадает и в day, и в overnight.
var templateSeeds = []templateSeed{
	{
		title: "Gear", category: "ski-tour", duration: "any",
		itemNames: []string{
			"Skis/splitboard, poles, boots, skins",
			"Transceiver, probe, shovel and spare batteries",
			"Helmet, goggles, sunglasses",
			"Whistle",
			"Medical kit",
			"Duct tape, zip ties, multitool, knife, ski straps",
			"Headtorch, compass, lighter",
			"Ski crampons",
		},
	},
	{
		title: "Clothing", category: "ski-tour", duration: "any",
		itemNames: []string{
			"Puffy/down jacket",
			"Shell jacket",
			"Bibs/pants",
			"Baselayer - top and bottom",
			"Mid-layer(s)",
			"Touring gloves, warm gloves, extra gloves or liners",
			"Cap, buff, toque (beanie)",
			"Socks and spare pair",
		},
	},
	{
		title: "Food (Day Trip)", category: "ski-tour", duration: "day",
		itemNames: []string{
			"1.5L water", "Sandwich", "Nuts", "Clif bar", "Apple", "Thermos of tea",
		},
	},
	{
		title: "Food (Overnight Trip)", category: "ski-tour", duration: "overnight",
		itemNames: []string{
			"1.5L water",
			"1x sandwich/day",
			"1 x portion of nuts/day",
			"1.5x clif bar/day",
			"1x apple/2days",
			"Thermos of tea",
			"~500 calories of dehydrated meal/night",
			"2/3 cups of oatmeal with added dried fruit, nuts and sugar/morning",
			"Coffee and tea",
			"Ample chocolate/treats",
		},
	},
	{
		title: "Camping", category: "ski-tour", duration: "overnight",
		itemNames: []string{
			"Tent",
			"Sleeping bag",
			"Sleeping mat",
			"Headlamp",
			"Nalgene bottle (for drinking and as sleeping bag warmer)",
			"Additional water bottle or hydration bladder",
			"Camping stove and gas",
			"Eating kit - bowl/tupperware, cup, fork/spoon",
			"Knife/multitool",
			"Rubbish bags",
			"Toiletries - washcloth, toothbrush, toothpaste",
			"First aid kit",
			"Insect repellant and sunscreen",
			"Poo kit - wag bag or trowel, toilet paper, toilet-paper-bag",
		},
	},
	// Категория hiking - также дефолт для поездок с категорией "other"
	{
		title: "Gear", category: "hiking", duration: "any",
		itemNames: []string{
			"Backpack and rain cover",
			"Hiking boots or trail shoes",
			"Trekking poles",
			"Map, compass, GPS",
			"Medical kit",
			"Headtorch and spare batteries",
			"Multitool/knife, duct tape",
			"Whistle",
		},
	},
	{
		title: "Clothing", category: "hiking", duration: "any",
		itemNames: []string{
			"Rain jacket",
			"Insulating layer",
			"Hiking pants/shorts",
			"Baselayer - top and bottom",
			"Sun hat, warm hat",
			"Gloves",
			"Socks and spare pair",
		},
	},
	{
		title: "Food (Day Trip)", category: "hiking", duration: "day",
		itemNames: []string{
			"2L water", "Sandwich", "Trail mix", "Energy bar", "Fruit",
		},
	},
	{
		title: "Food (Overnight Trip)", category: "hiking", duration: "overnight",
		itemNames: []string{
			"2L water and purification",
			"1x sandwich/day",
			"Trail mix",
			"~500 calories of dehydrated meal/night",
			"Oatmeal with dried fruit and nuts/morning",
			"Coffee and tea",
			"Chocolate/treats",
		},
	},
	{
		title: "Camping", category: "hiking", duration: "overnight",
		itemNames: []string{
			"Tent",
			"Sleeping bag",
			"Sleeping mat",
			"Headlamp",
			"Camping stove and gas",
			"Eating kit - bowl/tupperware, cup, fork/spoon",
			"Rubbish bags",
			"Toiletries - washcloth, toothbrush, toothpaste",
			"First aid kit",
			"Insect repellant and sunscreen",
		},
	},
}

// SeedTemplates наполняет шаблонные таблицы при первом запуске.
// Повторный вызов ничего не делает.
func SeedTemplates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TemplateList{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range templateSeeds {
		list := models.TemplateList{
			Title:        seed.title,
			TripCategory: seed.category,
			TripDuration: seed.duration,
		}
		if err := db.Create(&list).Error; err != nil {
			return err
		}
		for _, name := range seed.itemNames {
			item := models.TemplateListItem{Name: name, TemplateListID: list.ID}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

package catalog

import "github.com/wanderroute/go-itinerary-planner/internal/types"

// The built-in Beijing catalog. Order matters: it fixes iteration order for
// tag search and the exhaustion fallback slice, keeping plans deterministic.
var beijingPOIs = []types.POI{
	// 京城名胜
	{ID: "gugong", Name: "故宫", Lat: 39.9163, Lon: 116.3972, Category: "imperial", Tags: []string{"history", "architecture", "imperial"}, Zone: "central", VisitDurationMin: 180},
	{ID: "tiantan", Name: "天坛", Lat: 39.8828, Lon: 116.4074, Category: "temple", Tags: []string{"history", "architecture", "temple"}, Zone: "central", VisitDurationMin: 90},
	{ID: "tiananmen", Name: "天安门", Lat: 39.9075, Lon: 116.3914, Category: "landmark", Tags: []string{"history", "landmark"}, Zone: "central", VisitDurationMin: 30},
	{ID: "yiheyuan", Name: "颐和园", Lat: 39.9998, Lon: 116.2755, Category: "garden", Tags: []string{"garden", "nature", "imperial"}, Zone: "west", VisitDurationMin: 180},
	{ID: "changcheng", Name: "长城", Lat: 40.4319, Lon: 116.5704, Category: "landmark", Tags: []string{"history", "landmark", "nature"}, Zone: "north", VisitDurationMin: 240},
	{ID: "yuanmingyuan", Name: "圆明园", Lat: 40.0077, Lon: 116.2951, Category: "garden", Tags: []string{"history", "garden", "imperial"}, Zone: "west", VisitDurationMin: 120},
	{ID: "ditan", Name: "地坛", Lat: 39.9483, Lon: 116.4071, Category: "temple", Tags: []string{"temple", "park"}, Zone: "north", VisitDurationMin: 60},
	{ID: "zhongshan", Name: "中山公园", Lat: 39.9094, Lon: 116.3892, Category: "park", Tags: []string{"park", "nature"}, Zone: "central", VisitDurationMin: 45},
	{ID: "shejitan", Name: "社稷坛", Lat: 39.9089, Lon: 116.3883, Category: "temple", Tags: []string{"temple", "history"}, Zone: "central", VisitDurationMin: 30},

	// 京华墨韵
	{ID: "guozijian", Name: "国子监", Lat: 39.9488, Lon: 116.4109, Category: "culture", Tags: []string{"culture", "history", "education"}, Zone: "north", VisitDurationMin: 60},
	{ID: "kongmiao", Name: "孔庙", Lat: 39.9491, Lon: 116.4106, Category: "temple", Tags: []string{"culture", "history", "temple"}, Zone: "north", VisitDurationMin: 60},
	{ID: "liulichang", Name: "琉璃厂", Lat: 39.8944, Lon: 116.3731, Category: "culture", Tags: []string{"culture", "art", "shopping"}, Zone: "central", VisitDurationMin: 90},
	{ID: "nanluogu", Name: "南锣鼓巷", Lat: 39.9370, Lon: 116.4029, Category: "hutong", Tags: []string{"culture", "hutong", "shopping"}, Zone: "central", VisitDurationMin: 90},
	{ID: "shichahai", Name: "什刹海", Lat: 39.9390, Lon: 116.3861, Category: "nature", Tags: []string{"nature", "hutong", "culture"}, Zone: "central", VisitDurationMin: 120},
	{ID: "houhai", Name: "后海", Lat: 39.9380, Lon: 116.3823, Category: "nature", Tags: []string{"nature", "bar", "culture"}, Zone: "central", VisitDurationMin: 90},
	{ID: "yandaixie", Name: "烟袋斜街", Lat: 39.9408, Lon: 116.3875, Category: "hutong", Tags: []string{"culture", "hutong", "shopping"}, Zone: "central", VisitDurationMin: 60},

	// 京祀胜迹
	{ID: "lama", Name: "雍和宫", Lat: 39.9486, Lon: 116.4188, Category: "temple", Tags: []string{"temple", "buddhism", "architecture"}, Zone: "north", VisitDurationMin: 90},
	{ID: "biyun", Name: "碧云寺", Lat: 40.0028, Lon: 116.1919, Category: "temple", Tags: []string{"temple", "buddhism", "nature"}, Zone: "west", VisitDurationMin: 90},
	{ID: "tanzhe", Name: "潭柘寺", Lat: 39.9458, Lon: 115.9817, Category: "temple", Tags: []string{"temple", "buddhism", "history"}, Zone: "west", VisitDurationMin: 120},
	{ID: "fayuan", Name: "法源寺", Lat: 39.8883, Lon: 116.3711, Category: "temple", Tags: []string{"temple", "buddhism", "culture"}, Zone: "central", VisitDurationMin: 60},
	{ID: "jietai", Name: "戒台寺", Lat: 39.9322, Lon: 116.0117, Category: "temple", Tags: []string{"temple", "buddhism", "history"}, Zone: "west", VisitDurationMin: 90},

	// 和合圣境
	{ID: "baiyun", Name: "白云观", Lat: 39.8828, Lon: 116.3525, Category: "temple", Tags: []string{"temple", "taoism", "culture"}, Zone: "central", VisitDurationMin: 60},
	{ID: "dongyue", Name: "东岳庙", Lat: 39.9264, Lon: 116.4472, Category: "temple", Tags: []string{"temple", "taoism", "culture"}, Zone: "east", VisitDurationMin: 60},
	{ID: "niujie", Name: "牛街礼拜寺", Lat: 39.8822, Lon: 116.3586, Category: "mosque", Tags: []string{"temple", "islam", "culture"}, Zone: "central", VisitDurationMin: 45},
	{ID: "guangji", Name: "广济寺", Lat: 39.9178, Lon: 116.3694, Category: "temple", Tags: []string{"temple", "buddhism", "culture"}, Zone: "central", VisitDurationMin: 45},

	// 补充景点
	{ID: "jingshan", Name: "景山公园", Lat: 39.9275, Lon: 116.3953, Category: "park", Tags: []string{"park", "nature", "history"}, Zone: "central", VisitDurationMin: 60},
	{ID: "gulou", Name: "鼓楼", Lat: 39.9444, Lon: 116.3933, Category: "landmark", Tags: []string{"history", "landmark", "culture"}, Zone: "central", VisitDurationMin: 45},
	{ID: "xiangshan", Name: "香山", Lat: 39.9917, Lon: 116.1878, Category: "nature", Tags: []string{"nature", "park", "mountain"}, Zone: "west", VisitDurationMin: 180},
	{ID: "gui", Name: "簋街美食", Lat: 39.9389, Lon: 116.4322, Category: "food", Tags: []string{"food", "spicy", "crayfish", "nightlife"}, Zone: "east", VisitDurationMin: 120},
	{ID: "huguo", Name: "护国寺小吃", Lat: 39.9289, Lon: 116.3733, Category: "food", Tags: []string{"food", "snack", "traditional", "cheap"}, Zone: "central", VisitDurationMin: 60},
	{ID: "wangfujing", Name: "王府井小吃街", Lat: 39.9139, Lon: 116.4108, Category: "food", Tags: []string{"food", "snack", "shopping", "tourist"}, Zone: "central", VisitDurationMin: 90},
	{ID: "quanjude", Name: "全聚德烤鸭", Lat: 39.9041, Lon: 116.4119, Category: "food", Tags: []string{"food", "beijing_cuisine", "duck", "famous"}, Zone: "central", VisitDurationMin: 90},
	{ID: "donglaishun", Name: "东来顺涮肉", Lat: 39.9252, Lon: 116.4071, Category: "food", Tags: []string{"food", "hotpot", "mutton", "famous"}, Zone: "central", VisitDurationMin: 90},
	{ID: "luzhu", Name: "卤煮火烧", Lat: 39.8951, Lon: 116.3759, Category: "food", Tags: []string{"food", "traditional", "cheap", "local"}, Zone: "central", VisitDurationMin: 45},

	// 岁时庙会
	{ID: "ditan_mh", Name: "地坛庙会", Lat: 39.9483, Lon: 116.4071, Category: "festival", Tags: []string{"festival", "temple_fair", "traditional", "spring"}, Zone: "central", VisitDurationMin: 120},
	{ID: "longtan", Name: "龙潭庙会", Lat: 39.8790, Lon: 116.4344, Category: "festival", Tags: []string{"festival", "temple_fair", "traditional", "spring"}, Zone: "east", VisitDurationMin: 120},
	{ID: "changdian", Name: "厂甸庙会", Lat: 39.8957, Lon: 116.3735, Category: "festival", Tags: []string{"festival", "temple_fair", "traditional", "culture"}, Zone: "central", VisitDurationMin: 120},
	{ID: "baiyun_mh", Name: "白云观庙会", Lat: 39.8828, Lon: 116.3525, Category: "festival", Tags: []string{"festival", "temple_fair", "taoism", "spring"}, Zone: "central", VisitDurationMin: 120},
}

var beijingPresetRoutes = []types.PresetRoute{
	{ID: "zhongzhou", Name: "中轴线一日游", Description: "故宫-天安门-景山-鼓楼", POIIDs: []string{"tiananmen", "gugong", "jingshan", "gulou"}},
	{ID: "hutong", Name: "胡同深度游", Description: "南锣鼓巷-什刹海-烟袋斜街", POIIDs: []string{"nanluogu", "shichahai", "yandaixie"}},
	{ID: "royal", Name: "皇家园林游", Description: "颐和园-圆明园-香山", POIIDs: []string{"yiheyuan", "yuanmingyuan", "xiangshan"}},
	{ID: "temple", Name: "古刹祈福游", Description: "雍和宫-潭柘寺-戒台寺", POIIDs: []string{"lama", "tanzhe", "jietai"}},
	{ID: "culture", Name: "文化探索游", Description: "国子监-孔庙-琉璃厂", POIIDs: []string{"guozijian", "kongmiao", "liulichang"}},
	{ID: "food", Name: "美食寻味游", Description: "簋街-护国寺-王府井", POIIDs: []string{"gui", "huguo", "wangfujing"}},
}

package scene

// SceneAssets is the fixed presentation bundle for a topic.
type SceneAssets struct {
	Title         string
	BackgroundURL string
	Elements      string
}

const (
	forestBackgroundURL     = "https://images.unsplash.com/photo-1565763924944-d817191d1f22?ixlib=rb-4.0.3&ixid=M3wx147jYh9IgFKfvNzVnBkMmQw&auto=format&fit=crop&w=1920"
	cityBackgroundURL       = "https://images.unsplash.com/photo-1685161193347-e3b0e3e2b3c5?ixlib=rb-4.0.3&ixid=M3wx147jYh9IgFKfvNzVnBkMmQw&auto=format&fit=crop&w=1920"
	underwaterBackgroundURL = "https://images.unsplash.com/photo-1105336529889134564?ixlib=rb-4.0.3&ixid=M3wx147jYh9IgFKfvNzVnBkMmQw&auto=format&fit=crop&w=1920"
)

// assetTable holds one entry per topic, including DefaultTopic. Elements are
// filled in from RenderEnvironmentElements on lookup.
var assetTable = map[Topic]SceneAssets{
	TopicForest: {
		Title:         "Enchanted Forest",
		BackgroundURL: forestBackgroundURL,
	},
	TopicCity: {
		Title:         "The city Landscape",
		BackgroundURL: cityBackgroundURL,
	},
	TopicUnderwater: {
		Title:         "The underwater Landscape",
		BackgroundURL: underwaterBackgroundURL,
	},
}

// LookupAssets returns the assets for a topic. Values outside the enum
// resolve to the DefaultTopic entry, so the lookup is total.
func LookupAssets(topic Topic) SceneAssets {
	a, ok := assetTable[topic]
	if !ok {
		topic = DefaultTopic
		a = assetTable[topic]
	}
	a.Elements = RenderEnvironmentElements(topic)
	return a
}

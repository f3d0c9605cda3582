package scene

import "strings"

// Topic identifies one of the fixed scene categories.
type Topic string

const (
	TopicForest     Topic = "forest"
	TopicCity       Topic = "city"
	TopicUnderwater Topic = "underwater"
)

// DefaultTopic is selected when no keyword matches.
const DefaultTopic = TopicForest

// topicRule pairs a topic with the keywords that select it.
type topicRule struct {
	Topic    Topic
	Keywords []string
}

// detectionRules is scanned in order; the first rule with a matching keyword wins.
var detectionRules = []topicRule{
	{Topic: TopicForest, Keywords: []string{"forest", "tree"}},
	{Topic: TopicCity, Keywords: []string{"city", "building"}},
	{Topic: TopicUnderwater, Keywords: []string{"underwater", "sea"}},
}

// DetectTopic picks the scene topic for a prompt by case-insensitive
// substring matching. It never fails; prompts that match nothing (including
// the empty string) resolve to DefaultTopic.
func DetectTopic(prompt string) Topic {
	lower := strings.ToLower(prompt)
	for _, rule := range detectionRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Topic
			}
		}
	}
	return DefaultTopic
}

// Topics returns all topics in detection priority order.
func Topics() []Topic {
	topics := make([]Topic, len(detectionRules))
	for i, rule := range detectionRules {
		topics[i] = rule.Topic
	}
	return topics
}

// Keywords returns a copy of the keyword set for the topic, or nil if the
// topic is unknown.
func Keywords(topic Topic) []string {
	for _, rule := range detectionRules {
		if rule.Topic == topic {
			return append([]string(nil), rule.Keywords...)
		}
	}
	return nil
}

// ParseTopic resolves a topic name case-insensitively.
func ParseTopic(s string) (Topic, bool) {
	name := Topic(strings.ToLower(strings.TrimSpace(s)))
	for _, rule := range detectionRules {
		if rule.Topic == name {
			return name, true
		}
	}
	return "", false
}

func (t Topic) String() string { return string(t) }

package assist

// Reply selection is an ordered list of keyword-containment rules over the
// lower-cased message: the first rule that matches wins. The categories are
// near-disjoint by keyword choice, so a small ordered list is adequate —
// this is a scripted demo assistant, not an NLU system.
type rule struct {
	// any matches when at least one keyword appears. Ignored when empty.
	any []string
	// all matches only when every keyword appears.
	all   []string
	reply string
}

var replyRules = []rule{
	{
		any:   []string{"register", "sign up", "get started"},
		reply: "Great! To get started with PickHealth, click the 'Register' tab above. You can choose between:\n\n🏢 **Corporate Client** - If you're looking for healthy meal providers for your team\n👨‍🍳 **Meal Provider** - If you're a caterer/restaurant wanting to serve corporate clients\n\nWhich type of account would you like to create?",
	},
	{
		all:   []string{"how", "work"},
		reply: "PickHealth works in 3 simple steps:\n\n1️⃣ **Company Setup** - Tell us about your team size, budget, and preferences\n2️⃣ **Smart Matching** - Our AI matches you with the perfect meal providers\n3️⃣ **Fresh Delivery** - Healthy meals delivered to your office\n\nWe handle the logistics while you focus on your business!",
	},
	{
		any:   []string{"cost", "price", "fee"},
		reply: "PickHealth operates on a commission model:\n\n💰 **No upfront costs** for companies or meal providers\n💼 **Corporate clients** pay their meal providers directly\n🤝 **Meal providers** pay a small commission on successful orders\n\nThis ensures everyone wins - no hidden fees or surprises!",
	},
	{
		any:   []string{"meal provider", "caterer", "restaurant"},
		reply: "Our meal providers are carefully vetted local businesses that specialize in healthy, corporate-friendly meals:\n\n✅ **Health-focused menus** with nutritional information\n✅ **Corporate experience** handling large orders\n✅ **Reliable delivery** to office locations\n✅ **Flexible options** for dietary restrictions\n\nWould you like to see available providers in your area?",
	},
	{
		any:   []string{"benefit", "advantage", "why"},
		reply: "PickHealth offers several key benefits:\n\n📈 **Boost Productivity** - Healthy employees are 25% more productive\n💚 **Employee Wellness** - Support your team's health goals\n📊 **Detailed Reporting** - Track meal preferences and satisfaction\n👥 **Retention Boost** - Companies with wellness programs see 28% higher retention\n\nIt's an investment in your team's health and your company's success!",
	},
	{
		any:   []string{"partner", "join", "become"},
		reply: "We're always looking for great meal providers to join our network! Benefits include:\n\n🎯 **Steady corporate orders** (200-400 meals/week)\n💰 **Higher revenue** with predictable monthly income\n📦 **Bulk delivery efficiency** vs individual orders\n📈 **Business growth** - we handle sales, you handle cooking\n🤝 **No upfront costs** - revenue share model\n\nInterested in becoming a partner?",
	},
	{
		any:   []string{"help", "support", "contact"},
		reply: "I'm here to help! You can:\n\n💬 **Ask me anything** about PickHealth\n📧 **Email us** at support@pickhealth.com\n📱 **Call us** at (404) 555-0123\n\nFor immediate assistance, try our quick action buttons above. What would you like to know more about?",
	},
}

// fallbackReply answers anything no rule matched.
const fallbackReply = "That's a great question! I'd be happy to help you learn more about PickHealth. You can:\n\n🔍 **Ask specific questions** about our services\n📋 **Use the quick action buttons** above for common topics\n💡 **Learn about our process** and how we help companies and meal providers\n\nWhat would you like to know more about?"

// quickActionReplies answers the fixed quick-action buttons. These bypass
// the rule table entirely.
var quickActionReplies = map[string]string{
	"how-it-works": "Here's how PickHealth works:\n\n1️⃣ **Company Setup** - Tell us about your team size, budget, and dietary preferences\n2️⃣ **AI Matching** - Our smart system matches you with the perfect meal providers\n3️⃣ **Fresh Delivery** - Healthy meals delivered to your office, ready to enjoy\n\nWe handle all the logistics while you focus on your business. It's that simple!",
	"pricing":      "PickHealth pricing is simple and transparent:\n\n🏢 **For Companies**:\n• No setup fees or monthly charges\n• Pay meal providers directly at their rates\n• We earn commission from providers, not you\n\n👨‍🍳 **For Meal Providers**:\n• No upfront costs to join\n• Small commission on successful orders\n• Access to corporate clients you couldn't reach otherwise\n\nEveryone wins with our model!",
	"registration": "Ready to get started? Here's how:\n\n1️⃣ **Click the 'Register' tab** above\n2️⃣ **Choose your account type**:\n   • Corporate Client - Looking for meal providers\n   • Meal Provider - Ready to serve corporate clients\n3️⃣ **Fill out your profile** with company details\n4️⃣ **Start connecting** with partners!\n\nRegistration takes just 2-3 minutes. Would you like me to walk you through it?",
	"support":      "Need support? We're here to help!\n\n📧 **Email**: support@pickhealth.com\n📱 **Phone**: (404) 555-0123\n⏰ **Hours**: Monday-Friday, 9AM-6PM EST\n\n**Common Support Topics**:\n• Account setup and management\n• Meal provider recommendations\n• Delivery scheduling\n• Billing and payments\n• Technical issues\n\nWhat can I help you with today?",
}

// welcomeMessage opens every conversation.
const welcomeMessage = "Welcome to PickHealth! I'm your AI assistant. I can help you learn about our platform, get started, or answer any questions you have about corporate meal solutions."

// initialSuggestions are the chips shown before the first message.
var initialSuggestions = []string{
	"How does PickHealth work?",
	"What are the costs?",
	"How do I register?",
	"Tell me about meal providers",
}

// Suggestion chips update on a parallel rule set keyed on different keyword
// buckets. Cosmetic state only: chips never gate which replies are
// reachable, free text always re-evaluates the reply rules above.
type suggestionBucket struct {
	any   []string
	chips []string
}

var suggestionBuckets = []suggestionBucket{
	{
		any:   []string{"register", "sign up"},
		chips: []string{"What information do I need?", "How long does it take?", "Is it free?"},
	},
	{
		any:   []string{"meal", "food"},
		chips: []string{"What cuisines are available?", "How do I choose a provider?", "What about dietary restrictions?"},
	},
	{
		any:   []string{"cost", "price"},
		chips: []string{"Are there hidden fees?", "How does billing work?", "What about bulk discounts?"},
	},
}

var defaultSuggestions = []string{
	"Tell me more about PickHealth",
	"How do I get started?",
	"What makes you different?",
}
